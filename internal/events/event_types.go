package events

// EventType identifies domain events emitted by the management services.
type EventType string

const (
	EventEmployeeCreated      EventType = "EmployeeCreated"
	EventEmployeeUpdated      EventType = "EmployeeUpdated"
	EventEmployeeDeleted      EventType = "EmployeeDeleted"
	EventMachineStatusChanged EventType = "MachineStatusChanged"
)

// Event carries a domain change to subscribers.
type Event struct {
	ID       string
	Type     EventType
	BranchID string
	Payload  map[string]any
}
