package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/auth"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// CSRFHandler issues per-session anti-forgery tokens.
type CSRFHandler struct {
	ttl           time.Duration
	secureCookies bool
}

// NewCSRFHandler constructs handler.
func NewCSRFHandler(ttl time.Duration, secureCookies bool) *CSRFHandler {
	return &CSRFHandler{ttl: ttl, secureCookies: secureCookies}
}

// Get handles GET /auth/csrf-token. Runs behind the auth middleware, so an
// unauthenticated request never reaches token generation. Calling it twice
// within one session returns the same token.
func (h *CSRFHandler) Get(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewAuthenticationRequired("authentication required")
	}

	token, created, err := auth.GetOrCreateCSRFToken(c.Cookies(auth.CSRFCookieName))
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if created {
		c.Cookie(auth.CSRFCookie(token, time.Now().Add(h.ttl), h.secureCookies))
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"csrfToken": token,
	})
}
