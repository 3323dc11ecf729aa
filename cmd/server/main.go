package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/callerid/internal/config"
	"github.com/example/callerid/internal/database"
	"github.com/example/callerid/internal/logging"
	"github.com/example/callerid/internal/repository"
	"github.com/example/callerid/internal/routes"
	"github.com/example/callerid/internal/services"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	var users repository.UserRepository
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL, cfg.LogLevel)
		if err != nil {
			logger.Error("connect database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("close database", "error", err)
			}
		}()
		users = repository.NewUserRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory user store", "env", cfg.AppEnv)
		users = repository.NewMemoryRepository()
	}

	issuer, err := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenExpires)
	if err != nil {
		log.Fatalf("build token issuer: %v", err)
	}

	deps := routes.Deps{Cfg: cfg, Users: users, Issuer: issuer, Logger: logger}
	app := routes.NewApp(deps)
	routes.Register(app, deps)

	srvErrCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Address(), "env", cfg.AppEnv)
		srvErrCh <- app.Listen(cfg.Address())
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited cleanly")
}
