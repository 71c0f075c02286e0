package domain

import "time"

// MachineType distinguishes washers from dryers.
type MachineType string

const (
	MachineTypeWasher MachineType = "WASHER"
	MachineTypeDryer  MachineType = "DRYER"
)

// MachineStatus represents lifecycle states for a machine.
type MachineStatus string

const (
	MachineStatusAvailable   MachineStatus = "AVAILABLE"
	MachineStatusInUse       MachineStatus = "IN_USE"
	MachineStatusMaintenance MachineStatus = "MAINTENANCE"
)

// ValidMachineStatus reports whether s is a known status.
func ValidMachineStatus(s MachineStatus) bool {
	switch s {
	case MachineStatusAvailable, MachineStatusInUse, MachineStatusMaintenance:
		return true
	}
	return false
}

// Machine models a washer or dryer installed at a branch.
type Machine struct {
	ID         string
	BranchID   string
	Code       string
	Type       MachineType
	CapacityKg int
	Status     MachineStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
