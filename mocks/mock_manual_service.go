package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ziebelle/move37/internal/domain"
)

// MockManualService is a mock implementation of service.ManualService.
type MockManualService struct {
	mock.Mock
}

func (m *MockManualService) List(ctx context.Context) ([]domain.ManualSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualSummary), args.Error(1)
}

func (m *MockManualService) GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualDetail), args.Error(1)
}

func (m *MockManualService) ListDetails(ctx context.Context) ([]domain.ManualDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualDetail), args.Error(1)
}

func (m *MockManualService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
