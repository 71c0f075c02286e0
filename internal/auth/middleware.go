package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/domain"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, reconstructed from token
// claims alone.
type Principal struct {
	UserID   string
	Username string
	Role     domain.Role
}

// AuthMiddleware validates session cookies on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication. A missing cookie is 401; a cookie that
// fails verification is 403. No database round-trip happens here.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := c.Cookies(SessionCookieName)
	if tokenStr == "" {
		return apperrors.NewAuthenticationRequired("authentication required")
	}

	claims, err := m.tokens.Verify(tokenStr)
	if err != nil {
		switch err {
		case ErrTokenExpired:
			return apperrors.NewForbidden("session expired")
		case ErrInvalidSignature:
			return apperrors.NewForbidden("invalid session")
		default:
			return apperrors.NewForbidden("invalid session")
		}
	}

	c.Locals(principalKey, &Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
