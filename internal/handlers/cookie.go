package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/config"
	"github.com/example/callerid/internal/middleware"
)

// CookieHelper manages the credential cookie.
type CookieHelper struct {
	config config.HTTPConfig
}

// NewCookieHelper creates a cookie helper for the deployment's settings.
func NewCookieHelper(cfg config.HTTPConfig) *CookieHelper {
	return &CookieHelper{config: cfg}
}

// SetCredential stores the credential in an HTTP-only cookie living as long
// as the credential itself.
func (h *CookieHelper) SetCredential(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(h.cookie(token, int(ttl.Seconds()), time.Time{}))
}

// ClearCredential expires the credential cookie.
func (h *CookieHelper) ClearCredential(c *fiber.Ctx) {
	c.Cookie(h.cookie("", 0, time.Unix(0, 0)))
}

func (h *CookieHelper) cookie(value string, maxAge int, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     middleware.CredentialCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		Secure:   h.config.CookieSecure,
		HTTPOnly: true,
		SameSite: h.config.CookieSameSite,
	}
}
