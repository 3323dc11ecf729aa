package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const minJWTSecretBytes = 32

// Config holds application configuration values.
type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	AppPort         string        `env:"PORT" envDefault:"8080"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	TokenExpires    time.Duration `env:"JWT_EXPIRES_IN" envDefault:"2160h"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTP            HTTPConfig
}

// HTTPConfig carries the settings that differ between deployments of the
// same handler set: the browser origin allowed to call us and the attributes
// of the credential cookie.
type HTTPConfig struct {
	CORSOrigin     string `env:"CORS_ORIGIN" envDefault:"http://127.0.0.1:5500"`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieSameSite string `env:"COOKIE_SAMESITE" envDefault:"lax"`
}

// Load reads environment variables (and a .env file when present) and
// returns a populated Config. It exits the process on invalid configuration.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

// Parse reads the process environment into a Config and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.HTTP.CookieSameSite = strings.ToLower(strings.TrimSpace(cfg.HTTP.CookieSameSite))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.AppPort) == "" {
		return errors.New("PORT must be set")
	}
	if len(c.JWTSecret) < minJWTSecretBytes {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretBytes)
	}
	if c.TokenExpires <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	if c.DatabaseURL == "" && !c.IsDevelopment() {
		return fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", c.AppEnv)
	}

	switch c.HTTP.CookieSameSite {
	case "lax", "strict":
	case "none":
		if !c.HTTP.CookieSecure {
			return errors.New("COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
		}
	default:
		return fmt.Errorf("COOKIE_SAMESITE must be one of lax, strict, none; got %q", c.HTTP.CookieSameSite)
	}

	if strings.TrimSpace(c.HTTP.CORSOrigin) == "" || strings.Contains(c.HTTP.CORSOrigin, "*") {
		return errors.New("CORS_ORIGIN must name an explicit origin")
	}
	return nil
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c *Config) Address() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}
	return ":" + c.AppPort
}
