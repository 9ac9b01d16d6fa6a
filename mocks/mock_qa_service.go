package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockQAService is a mock implementation of service.QAService.
type MockQAService struct {
	mock.Mock
}

func (m *MockQAService) Answer(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}
