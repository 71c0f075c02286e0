package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/dto"
	"github.com/spec-kit/laundry-service/internal/auth"
	"github.com/spec-kit/laundry-service/internal/service"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// AuthHandler exposes login and logout endpoints.
type AuthHandler struct {
	auth          *service.AuthService
	secureCookies bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookies: secureCookies}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password are required", nil)
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(token, expiresAt, h.secureCookies))
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}

// Logout handles DELETE /auth/login. Stateless tokens mean this only clears
// the client's cookies; an already-issued token stays valid until expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), c.Cookies(auth.SessionCookieName)); err != nil {
		return err
	}

	c.Cookie(auth.ExpiredCookie(auth.SessionCookieName, h.secureCookies))
	c.Cookie(auth.ExpiredCookie(auth.CSRFCookieName, h.secureCookies))
	return c.JSON(fiber.Map{"success": true})
}
