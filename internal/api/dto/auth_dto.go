package dto

import "github.com/spec-kit/laundry-service/internal/domain"

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public user profile. The password hash and raw token
// never appear in a response body.
type UserResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
	BranchID *string     `json:"branchId,omitempty"`
}

// NewUserResponse maps a domain user to its public profile.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
		BranchID: user.BranchID,
	}
}
