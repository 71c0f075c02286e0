package dto

import "github.com/spec-kit/laundry-service/internal/domain"

// BranchResponse is the branch listing shape.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
	Rank    *int   `json:"rank,omitempty"`
}

// NewBranchResponse maps a domain branch.
func NewBranchResponse(b domain.Branch) BranchResponse {
	return BranchResponse{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Active:  b.Active,
		Rank:    b.Rank,
	}
}

// NewBranchResponses maps a slice preserving order.
func NewBranchResponses(branches []domain.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, NewBranchResponse(b))
	}
	return out
}
