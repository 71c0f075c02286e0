package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/laundry-service/internal/api/dto"
	"github.com/spec-kit/laundry-service/internal/service"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// MachinesHandler exposes machine CRUD endpoints.
type MachinesHandler struct {
	machines *service.MachineService
}

// NewMachinesHandler constructs handler.
func NewMachinesHandler(machineService *service.MachineService) *MachinesHandler {
	return &MachinesHandler{machines: machineService}
}

// List handles GET /api/machines.
func (h *MachinesHandler) List(c *fiber.Ctx) error {
	var branchID *string
	if v := c.Query("branchId"); v != "" {
		branchID = &v
	}

	machines, err := h.machines.List(c.Context(), branchID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"machines": dto.NewMachineResponses(machines),
		"total":    len(machines),
	})
}

// Create handles POST /api/machines.
func (h *MachinesHandler) Create(c *fiber.Ctx) error {
	var req dto.MachineRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	machine := req.ToDomain("")
	if err := h.machines.Create(c.Context(), machine); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"machine": dto.NewMachineResponse(*machine),
	})
}

// Update handles PUT /api/machines/:id.
func (h *MachinesHandler) Update(c *fiber.Ctx) error {
	var req dto.MachineRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	machine := req.ToDomain(c.Params("id"))
	if err := h.machines.Update(c.Context(), machine); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"machine": dto.NewMachineResponse(*machine),
	})
}

// Delete handles DELETE /api/machines/:id.
func (h *MachinesHandler) Delete(c *fiber.Ctx) error {
	if err := h.machines.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
