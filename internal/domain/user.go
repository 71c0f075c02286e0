package domain

import "time"

// Role enumerates permission levels attached to an account.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleOwner      Role = "owner"
	RoleCollector  Role = "collector"
	RoleCashier    Role = "cashier"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleCollector, RoleCashier:
		return true
	}
	return false
}

// User is the domain model for management accounts.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	BranchID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
