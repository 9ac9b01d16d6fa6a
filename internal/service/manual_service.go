package service

import (
	"context"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/port"
)

// ManualService defines the manual query and management contract.
type ManualService interface {
	List(ctx context.Context) ([]domain.ManualSummary, error)
	GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error)
	ListDetails(ctx context.Context) ([]domain.ManualDetail, error)
	Delete(ctx context.Context, id int64) error
}

type manualService struct {
	repo port.ManualRepository
}

// NewManualService creates a new ManualService implementation.
func NewManualService(repo port.ManualRepository) ManualService {
	return &manualService{repo: repo}
}

func (s *manualService) List(ctx context.Context) ([]domain.ManualSummary, error) {
	return s.repo.List(ctx)
}

func (s *manualService) GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *manualService) ListDetails(ctx context.Context) ([]domain.ManualDetail, error) {
	return s.repo.ListDetails(ctx)
}

func (s *manualService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
