package dto

import "github.com/spec-kit/laundry-service/internal/domain"

// MachineRequest payload for create/update.
type MachineRequest struct {
	BranchID   string `json:"branchId"`
	Code       string `json:"code"`
	Type       string `json:"type"`
	CapacityKg int    `json:"capacityKg"`
	Status     string `json:"status"`
}

// ToDomain builds a domain machine from the request.
func (r MachineRequest) ToDomain(id string) *domain.Machine {
	return &domain.Machine{
		ID:         id,
		BranchID:   r.BranchID,
		Code:       r.Code,
		Type:       domain.MachineType(r.Type),
		CapacityKg: r.CapacityKg,
		Status:     domain.MachineStatus(r.Status),
	}
}

// MachineResponse is the machine listing shape.
type MachineResponse struct {
	ID         string `json:"id"`
	BranchID   string `json:"branchId"`
	Code       string `json:"code"`
	Type       string `json:"type"`
	CapacityKg int    `json:"capacityKg"`
	Status     string `json:"status"`
}

// NewMachineResponse maps a domain machine.
func NewMachineResponse(m domain.Machine) MachineResponse {
	return MachineResponse{
		ID:         m.ID,
		BranchID:   m.BranchID,
		Code:       m.Code,
		Type:       string(m.Type),
		CapacityKg: m.CapacityKg,
		Status:     string(m.Status),
	}
}

// NewMachineResponses maps a slice preserving order.
func NewMachineResponses(machines []domain.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, NewMachineResponse(m))
	}
	return out
}
