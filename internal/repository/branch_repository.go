package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/laundry-service/internal/domain"
)

// BranchRepository defines persistence access for branches.
type BranchRepository interface {
	List(ctx context.Context) ([]domain.Branch, error)
	GetByID(ctx context.Context, id string) (*domain.Branch, error)
}

type branchRepository struct {
	pool *pgxpool.Pool
}

// NewBranchRepository returns a Postgres-backed implementation.
func NewBranchRepository(pool *pgxpool.Pool) BranchRepository {
	return &branchRepository{pool: pool}
}

// List returns branches in display order. Ordering comes from the
// branch_order configuration table; unranked branches sort last by name.
func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	const query = `
        SELECT b.id, b.name, b.address, b.phone, b.active, o.rank, b.created_at, b.updated_at
        FROM branches b
        LEFT JOIN branch_order o ON o.branch_name = b.name
        ORDER BY COALESCE(o.rank, 2147483647), b.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Address,
			&b.Phone,
			&b.Active,
			&b.Rank,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *branchRepository) GetByID(ctx context.Context, id string) (*domain.Branch, error) {
	const query = `
        SELECT b.id, b.name, b.address, b.phone, b.active, o.rank, b.created_at, b.updated_at
        FROM branches b
        LEFT JOIN branch_order o ON o.branch_name = b.name
        WHERE b.id=$1`

	var b domain.Branch
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Address,
		&b.Phone,
		&b.Active,
		&b.Rank,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
