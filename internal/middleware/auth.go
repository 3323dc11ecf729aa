package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/services"
)

// CredentialCookie is the cookie carrying the session credential.
const CredentialCookie = "token"

const claimsContextKey = "currentClaims"

// CredentialVerifier validates a raw credential.
type CredentialVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// AuthMiddleware verifies the session credential and loads its claims into
// the request context. The cookie is preferred; a Bearer header is accepted
// for clients without a cookie jar.
func AuthMiddleware(verifier CredentialVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CredentialCookie)
		if token == "" {
			token = bearerToken(c.Get(fiber.HeaderAuthorization))
		}
		if token == "" {
			return &services.Error{Kind: services.ErrUnauthorized, Message: "Unauthorized"}
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			var svcErr *services.Error
			if errors.As(err, &svcErr) {
				return err
			}
			return &services.Error{Kind: services.ErrInvalidCredential, Message: "Invalid token", Err: err}
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// GetCurrentClaims extracts the verified credential claims from context.
func GetCurrentClaims(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(claimsContextKey).(*services.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
