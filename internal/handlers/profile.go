package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/middleware"
	"github.com/example/callerid/internal/services"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct {
	identity *services.IdentityService
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(identity *services.IdentityService) *ProfileHandler {
	return &ProfileHandler{identity: identity}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	claims, _ := middleware.GetCurrentClaims(c)

	user, err := h.identity.Profile(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
