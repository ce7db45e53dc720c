package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"polex/internal/domain"
	"polex/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, input service.ExtractionInput) (*domain.PolicyExtraction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PolicyExtraction), args.Error(1)
}

func (m *MockExtractionService) ExtractFromText(ctx context.Context, text string) (*domain.PolicyExtraction, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PolicyExtraction), args.Error(1)
}
