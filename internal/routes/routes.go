package routes

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/callerid/internal/config"
	"github.com/example/callerid/internal/handlers"
	"github.com/example/callerid/internal/middleware"
	"github.com/example/callerid/internal/repository"
	"github.com/example/callerid/internal/services"
)

// Deps aggregates the shared dependencies built once at startup.
type Deps struct {
	Cfg    *config.Config
	Users  repository.UserRepository
	Issuer *services.TokenIssuer
	Logger *slog.Logger
	// AccessLog receives the HTTP access log; nil means stdout.
	AccessLog io.Writer
}

// NewApp builds the Fiber application with the service's error rendering.
func NewApp(d Deps) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "callerid",
		ErrorHandler: handlers.ErrorHandler(d.Logger),
	})
}

// Register wires up middleware and all HTTP routes.
func Register(app *fiber.App, d Deps) {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:" + middleware.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
		Output: d.AccessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.HTTP.CORSOrigin,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,X-Request-ID",
	}))

	identitySvc := services.NewIdentityService(d.Users, d.Logger)
	contactSvc := services.NewContactService(d.Users)

	authHandler := handlers.NewAuthHandler(identitySvc, d.Issuer, handlers.NewCookieHelper(d.Cfg.HTTP))
	profileHandler := handlers.NewProfileHandler(identitySvc)
	contactsHandler := handlers.NewContactsHandler(contactSvc)
	healthHandler := handlers.NewHealthHandler(d.Users)

	app.Get("/healthz", healthHandler.Check)

	// Public routes
	app.Post("/login", authHandler.Login)
	app.Post("/signup", authHandler.Signup)
	app.Post("/logout", authHandler.Logout)

	// Protected routes
	requireCredential := middleware.AuthMiddleware(d.Issuer)
	app.Get("/profile", requireCredential, profileHandler.GetProfile)
	app.Post("/contacts/search", requireCredential, contactsHandler.Search)
}
