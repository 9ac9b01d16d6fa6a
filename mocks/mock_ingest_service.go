package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ziebelle/move37/internal/extract"
)

// MockIngestService is a mock implementation of service.IngestService.
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Ingest(ctx context.Context, raw *extract.RawManual) (int64, bool, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockIngestService) IngestFile(ctx context.Context, path string) (int64, bool, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}
