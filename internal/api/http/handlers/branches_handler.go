package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/dto"
	"github.com/spec-kit/laundry-service/internal/service"
)

// BranchesHandler exposes branch listing endpoints.
type BranchesHandler struct {
	branches *service.BranchService
}

// NewBranchesHandler constructs handler.
func NewBranchesHandler(branchService *service.BranchService) *BranchesHandler {
	return &BranchesHandler{branches: branchService}
}

// List handles GET /api/branches.
func (h *BranchesHandler) List(c *fiber.Ctx) error {
	branches, err := h.branches.List(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"branches": dto.NewBranchResponses(branches),
		"total":    len(branches),
	})
}

// Get handles GET /api/branches/:id.
func (h *BranchesHandler) Get(c *fiber.Ctx) error {
	branch, err := h.branches.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"branch":  dto.NewBranchResponse(*branch),
	})
}
