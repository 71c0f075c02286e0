package domain

import "time"

// Employee models a branch worker.
type Employee struct {
	ID        string
	BranchID  string
	Name      string
	Phone     string
	Position  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
