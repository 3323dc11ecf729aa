package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves readiness checks.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check pings the user store.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	storeStatus := "ok"
	status := fiber.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		storeStatus = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    fiber.Map{"store": storeStatus},
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
