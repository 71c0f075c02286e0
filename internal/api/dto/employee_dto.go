package dto

import "github.com/spec-kit/laundry-service/internal/domain"

// EmployeeRequest payload for create/update.
type EmployeeRequest struct {
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Active   *bool  `json:"active"`
}

// ToDomain builds a domain employee from the request.
func (r EmployeeRequest) ToDomain(id string) *domain.Employee {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Employee{
		ID:       id,
		BranchID: r.BranchID,
		Name:     r.Name,
		Phone:    r.Phone,
		Position: r.Position,
		Active:   active,
	}
}

// EmployeeResponse is the employee listing shape.
type EmployeeResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Active   bool   `json:"active"`
}

// NewEmployeeResponse maps a domain employee.
func NewEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		BranchID: e.BranchID,
		Name:     e.Name,
		Phone:    e.Phone,
		Position: e.Position,
		Active:   e.Active,
	}
}

// NewEmployeeResponses maps a slice preserving order.
func NewEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
