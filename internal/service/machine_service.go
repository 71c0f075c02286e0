package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/events"
	"github.com/spec-kit/laundry-service/internal/repository"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// MachineService handles machine CRUD and publishes status-change events.
type MachineService struct {
	machines   repository.MachineRepository
	dispatcher events.Dispatcher
}

// NewMachineService builds the service.
func NewMachineService(machines repository.MachineRepository, dispatcher events.Dispatcher) *MachineService {
	return &MachineService{machines: machines, dispatcher: dispatcher}
}

// List returns machines, optionally filtered by branch.
func (s *MachineService) List(ctx context.Context, branchID *string) ([]domain.Machine, error) {
	machines, err := s.machines.List(ctx, repository.MachineFilter{BranchID: branchID})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return machines, nil
}

// Create validates and stores a new machine.
func (s *MachineService) Create(ctx context.Context, machine *domain.Machine) error {
	if machine.Code == "" || machine.BranchID == "" {
		return apperrors.NewValidationError("code and branchId are required", nil)
	}
	if machine.Type != domain.MachineTypeWasher && machine.Type != domain.MachineTypeDryer {
		return apperrors.NewValidationError("type must be WASHER or DRYER", nil)
	}
	if machine.Status == "" {
		machine.Status = domain.MachineStatusAvailable
	}
	if !domain.ValidMachineStatus(machine.Status) {
		return apperrors.NewValidationError("unknown machine status", map[string]any{"status": machine.Status})
	}
	if err := s.machines.Create(ctx, machine); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// Update modifies an existing machine and reports status transitions.
func (s *MachineService) Update(ctx context.Context, machine *domain.Machine) error {
	if machine.Code == "" || machine.BranchID == "" {
		return apperrors.NewValidationError("code and branchId are required", nil)
	}
	if !domain.ValidMachineStatus(machine.Status) {
		return apperrors.NewValidationError("unknown machine status", map[string]any{"status": machine.Status})
	}

	current, err := s.machines.GetByID(ctx, machine.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("machine", map[string]any{"id": machine.ID})
		}
		return apperrors.MapError(err)
	}

	if err := s.machines.Update(ctx, machine); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("machine", map[string]any{"id": machine.ID})
		}
		return apperrors.MapError(err)
	}

	if current.Status != machine.Status {
		s.publishStatusChange(ctx, machine, current.Status)
	}
	return nil
}

// Delete removes a machine.
func (s *MachineService) Delete(ctx context.Context, id string) error {
	if err := s.machines.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("machine", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *MachineService) publishStatusChange(ctx context.Context, machine *domain.Machine, previous domain.MachineStatus) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:       uuid.NewString(),
		Type:     events.EventMachineStatusChanged,
		BranchID: machine.BranchID,
		Payload: map[string]any{
			"machine_id": machine.ID,
			"code":       machine.Code,
			"from":       string(previous),
			"to":         string(machine.Status),
		},
	})
}
