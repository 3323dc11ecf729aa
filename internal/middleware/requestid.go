package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key holding the request identifier.
	RequestIDKey = "request_id"
	maxRequestID = 128
)

// RequestID ensures each request carries an identifier for log correlation.
// A client-supplied ID is kept when present.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := strings.Clone(strings.TrimSpace(c.Get(requestIDHeader)))
		if len(reqID) > maxRequestID {
			reqID = reqID[:maxRequestID]
		}
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(requestIDHeader, reqID)
		c.Locals(RequestIDKey, reqID)
		return c.Next()
	}
}

// GetRequestID returns the request identifier or an empty string.
func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}
