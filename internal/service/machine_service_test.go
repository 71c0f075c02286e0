package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/events"
	"github.com/spec-kit/laundry-service/internal/repository"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

type fakeMachineRepo struct {
	byID map[string]*domain.Machine
}

func (r *fakeMachineRepo) Create(_ context.Context, m *domain.Machine) error {
	m.ID = "m-1"
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMachineRepo) Update(_ context.Context, m *domain.Machine) error {
	if _, ok := r.byID[m.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[m.ID] = m
	return nil
}

func (r *fakeMachineRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeMachineRepo) GetByID(_ context.Context, id string) (*domain.Machine, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMachineRepo) List(context.Context, repository.MachineFilter) ([]domain.Machine, error) {
	var out []domain.Machine
	for _, m := range r.byID {
		out = append(out, *m)
	}
	return out, nil
}

func TestMachineUpdate_StatusChangePublishesEvent(t *testing.T) {
	t.Parallel()

	repo := &fakeMachineRepo{byID: map[string]*domain.Machine{
		"m-1": {ID: "m-1", BranchID: "b-1", Code: "W-01", Type: domain.MachineTypeWasher, Status: domain.MachineStatusAvailable},
	}}
	dispatcher := &recordingDispatcher{}
	svc := NewMachineService(repo, dispatcher)

	updated := &domain.Machine{ID: "m-1", BranchID: "b-1", Code: "W-01", Type: domain.MachineTypeWasher, Status: domain.MachineStatusMaintenance}
	require.NoError(t, svc.Update(context.Background(), updated))

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventMachineStatusChanged, event.Type)
	assert.Equal(t, "AVAILABLE", event.Payload["from"])
	assert.Equal(t, "MAINTENANCE", event.Payload["to"])
}

func TestMachineUpdate_SameStatusNoEvent(t *testing.T) {
	t.Parallel()

	repo := &fakeMachineRepo{byID: map[string]*domain.Machine{
		"m-1": {ID: "m-1", BranchID: "b-1", Code: "W-01", Type: domain.MachineTypeWasher, Status: domain.MachineStatusAvailable},
	}}
	dispatcher := &recordingDispatcher{}
	svc := NewMachineService(repo, dispatcher)

	updated := &domain.Machine{ID: "m-1", BranchID: "b-1", Code: "W-01", Type: domain.MachineTypeWasher, CapacityKg: 9, Status: domain.MachineStatusAvailable}
	require.NoError(t, svc.Update(context.Background(), updated))
	assert.Empty(t, dispatcher.published)
}

func TestMachineCreate_InvalidType(t *testing.T) {
	t.Parallel()

	repo := &fakeMachineRepo{byID: map[string]*domain.Machine{}}
	svc := NewMachineService(repo, &recordingDispatcher{})

	err := svc.Create(context.Background(), &domain.Machine{BranchID: "b-1", Code: "X", Type: "TOASTER"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestMachineDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeMachineRepo{byID: map[string]*domain.Machine{}}
	svc := NewMachineService(repo, &recordingDispatcher{})

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
