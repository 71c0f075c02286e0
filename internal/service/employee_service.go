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

// EmployeeService handles employee CRUD and publishes change events.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{employees: employees, dispatcher: dispatcher}
}

// List returns employees, optionally filtered by branch.
func (s *EmployeeService) List(ctx context.Context, branchID *string) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, repository.EmployeeFilter{BranchID: branchID})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// Create validates and stores a new employee.
func (s *EmployeeService) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.Name == "" || employee.BranchID == "" {
		return apperrors.NewValidationError("name and branchId are required", nil)
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeCreated, employee)
	return nil
}

// Update modifies an existing employee.
func (s *EmployeeService) Update(ctx context.Context, employee *domain.Employee) error {
	if employee.Name == "" || employee.BranchID == "" {
		return apperrors.NewValidationError("name and branchId are required", nil)
	}
	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": employee.ID})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeUpdated, employee)
	return nil
}

// Delete removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventEmployeeDeleted, employee)
	return nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, employee *domain.Employee) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:       uuid.NewString(),
		Type:     eventType,
		BranchID: employee.BranchID,
		Payload: map[string]any{
			"employee_id": employee.ID,
			"name":        employee.Name,
		},
	})
}
