package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("COOKIE_SAMESITE", "")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("CORS_ORIGIN", "")
}

func TestParseDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.TokenExpires != 90*24*time.Hour {
		t.Errorf("TokenExpires = %v, want 90 days", cfg.TokenExpires)
	}
	if cfg.HTTP.CookieSameSite != "lax" {
		t.Errorf("CookieSameSite = %q, want lax", cfg.HTTP.CookieSameSite)
	}
	if cfg.HTTP.CookieSecure {
		t.Error("CookieSecure should default to false")
	}
	if cfg.HTTP.CORSOrigin != "http://127.0.0.1:5500" {
		t.Errorf("CORSOrigin = %q", cfg.HTTP.CORSOrigin)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("Address() = %q, want :8080", cfg.Address())
	}
}

func TestParseOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/callerid?sslmode=disable")
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_EXPIRES_IN", "48h")
	t.Setenv("COOKIE_SAMESITE", "None")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.TokenExpires != 48*time.Hour {
		t.Errorf("TokenExpires = %v, want 48h", cfg.TokenExpires)
	}
	if cfg.HTTP.CookieSameSite != "none" || !cfg.HTTP.CookieSecure {
		t.Errorf("cookie settings = %+v", cfg.HTTP)
	}
	if cfg.IsDevelopment() {
		t.Error("production should not be development")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing secret", "JWT_SECRET", "", "JWT_SECRET"},
		{"short secret", "JWT_SECRET", "too-short", "at least 32"},
		{"bad samesite", "COOKIE_SAMESITE", "sideways", "COOKIE_SAMESITE"},
		{"samesite none without secure", "COOKIE_SAMESITE", "none", "COOKIE_SECURE"},
		{"wildcard origin", "CORS_ORIGIN", "*", "CORS_ORIGIN"},
		{"bad duration", "JWT_EXPIRES_IN", "90d", "parse env"},
		{"production without database", "APP_ENV", "production", "DATABASE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
