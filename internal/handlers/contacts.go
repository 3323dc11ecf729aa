package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/middleware"
	"github.com/example/callerid/internal/services"
)

// ContactsHandler serves contact lookups.
type ContactsHandler struct {
	contacts *services.ContactService
}

// NewContactsHandler constructs ContactsHandler.
func NewContactsHandler(contacts *services.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

type searchRequest struct {
	Contacts []string `json:"contacts"`
}

// Search reports which of the submitted numbers belong to registered users.
func (h *ContactsHandler) Search(c *fiber.Ctx) error {
	claims, _ := middleware.GetCurrentClaims(c)

	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Contacts array required")
	}

	result, err := h.contacts.Match(c.UserContext(), claims, req.Contacts)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
