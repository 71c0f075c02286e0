package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// PushHandler serves the web-push public key.
type PushHandler struct {
	publicKey string
}

// NewPushHandler constructs handler.
func NewPushHandler(publicKey string) *PushHandler {
	return &PushHandler{publicKey: publicKey}
}

// PublicKey handles GET /api/push/public-key. The key comes from
// configuration and is returned verbatim; a missing key is a deployment
// fault, not a client error.
func (h *PushHandler) PublicKey(c *fiber.Ctx) error {
	if h.publicKey == "" {
		return apperrors.NewInternalError(errors.New("push public key not configured"))
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"publicKey": h.publicKey,
	})
}
