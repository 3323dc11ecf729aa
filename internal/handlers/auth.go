package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/callerid/internal/services"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	identity *services.IdentityService
	issuer   *services.TokenIssuer
	cookies  *CookieHelper
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(identity *services.IdentityService, issuer *services.TokenIssuer, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{identity: identity, issuer: issuer, cookies: cookies}
}

type loginRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Login resolves the caller by mobile number, registering them on first
// contact, and sets the credential cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.identity.ResolveOrCreate(c.UserContext(), services.LoginInput{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		return err
	}
	h.cookies.SetCredential(c, token, h.issuer.TTL())

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

type signupRequest struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Signup registers a new user. No credential is issued; clients log in
// afterwards.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if _, err := h.identity.RegisterNewUser(c.UserContext(), services.SignupInput{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Email:   req.Email,
		Address: req.Address,
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Logout clears the credential cookie. The credential itself stays valid
// until it expires.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.ClearCredential(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
