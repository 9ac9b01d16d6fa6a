package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ziebelle/move37/internal/domain"
	"github.com/ziebelle/move37/internal/port"
)

// MockManualRepo is a mock implementation of port.ManualRepository.
type MockManualRepo struct {
	mock.Mock
}

func (m *MockManualRepo) Create(ctx context.Context, manual *domain.Manual, sections []port.IngestSection) error {
	args := m.Called(ctx, manual, sections)
	return args.Error(0)
}

func (m *MockManualRepo) GetIDBySourcePath(ctx context.Context, sourcePath string) (int64, error) {
	args := m.Called(ctx, sourcePath)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockManualRepo) List(ctx context.Context) ([]domain.ManualSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualSummary), args.Error(1)
}

func (m *MockManualRepo) GetByID(ctx context.Context, id int64) (*domain.ManualDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualDetail), args.Error(1)
}

func (m *MockManualRepo) ListDetails(ctx context.Context) ([]domain.ManualDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualDetail), args.Error(1)
}

func (m *MockManualRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
