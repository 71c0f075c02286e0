package service

import (
	"context"

	"github.com/spec-kit/laundry-service/internal/domain"
	"github.com/spec-kit/laundry-service/internal/repository"
	apperrors "github.com/spec-kit/laundry-service/pkg/util"
)

// BranchService exposes branch listings in configured display order.
type BranchService struct {
	branches repository.BranchRepository
}

// NewBranchService builds the service.
func NewBranchService(branches repository.BranchRepository) *BranchService {
	return &BranchService{branches: branches}
}

// List returns all branches ordered by their configured rank.
func (s *BranchService) List(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.branches.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return branches, nil
}

// Get returns a single branch.
func (s *BranchService) Get(ctx context.Context, id string) (*domain.Branch, error) {
	branch, err := s.branches.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return branch, nil
}
