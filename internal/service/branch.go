package service

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
)

type branchService struct {
	store repository.Store
}

func NewBranchService(store repository.Store) BranchService {
	return &branchService{store: store}
}

func (s *branchService) AddBranch(ctx context.Context, branch *domain.Branch) error {
	return s.store.Branches().Insert(ctx, branch)
}

// RemoveBranch is a no-op with a warning when the branch does not exist.
func (s *branchService) RemoveBranch(ctx context.Context, id int32) error {
	n, err := s.store.Branches().Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Warn("Branch does not exist", "branch_id", id)
	}
	return nil
}

func (s *branchService) RenameBranch(ctx context.Context, id int32, name string) error {
	n, err := s.store.Branches().UpdateName(ctx, id, name)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Warn("Branch does not exist", "branch_id", id)
	}
	return nil
}

func (s *branchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.store.Branches().List(ctx)
}
