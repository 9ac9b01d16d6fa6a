package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAnswerer is a mock implementation of port.Answerer.
type MockAnswerer struct {
	mock.Mock
}

func (m *MockAnswerer) Answer(ctx context.Context, question, knowledge string) (string, error) {
	args := m.Called(ctx, question, knowledge)
	return args.String(0), args.Error(1)
}
