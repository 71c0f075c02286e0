package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/domain"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// RequireRole ensures the caller's role is one of the allowed set. The check
// runs before the handler, so a rejected request never reaches a query.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewAuthenticationRequired("authentication required")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures any verified session is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewAuthenticationRequired("authentication required")
		}
		return c.Next()
	}
}
