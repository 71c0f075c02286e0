package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/laundry-service/internal/domain"
)

// MachineFilter narrows machine listings.
type MachineFilter struct {
	BranchID *string
}

// MachineRepository defines persistence access for machines.
type MachineRepository interface {
	Create(ctx context.Context, machine *domain.Machine) error
	Update(ctx context.Context, machine *domain.Machine) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	List(ctx context.Context, filter MachineFilter) ([]domain.Machine, error)
}

type machineRepository struct {
	pool *pgxpool.Pool
}

// NewMachineRepository returns a Postgres-backed implementation.
func NewMachineRepository(pool *pgxpool.Pool) MachineRepository {
	return &machineRepository{pool: pool}
}

func (r *machineRepository) Create(ctx context.Context, machine *domain.Machine) error {
	const query = `
        INSERT INTO machines (branch_id, code, type, capacity_kg, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		machine.BranchID,
		machine.Code,
		machine.Type,
		machine.CapacityKg,
		machine.Status,
	).Scan(&machine.ID, &machine.CreatedAt, &machine.UpdatedAt)
}

func (r *machineRepository) Update(ctx context.Context, machine *domain.Machine) error {
	const query = `
        UPDATE machines SET branch_id=$1, code=$2, type=$3, capacity_kg=$4, status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		machine.BranchID,
		machine.Code,
		machine.Type,
		machine.CapacityKg,
		machine.Status,
		machine.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *machineRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM machines WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	const query = `
        SELECT id, branch_id, code, type, capacity_kg, status, created_at, updated_at
        FROM machines WHERE id=$1`

	var m domain.Machine
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.BranchID,
		&m.Code,
		&m.Type,
		&m.CapacityKg,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *machineRepository) List(ctx context.Context, filter MachineFilter) ([]domain.Machine, error) {
	query := `
        SELECT id, branch_id, code, type, capacity_kg, status, created_at, updated_at
        FROM machines`
	args := []any{}
	if filter.BranchID != nil {
		query += ` WHERE branch_id=$1`
		args = append(args, *filter.BranchID)
	}
	query += ` ORDER BY code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var machines []domain.Machine
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(
			&m.ID,
			&m.BranchID,
			&m.Code,
			&m.Type,
			&m.CapacityKg,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, rows.Err()
}
