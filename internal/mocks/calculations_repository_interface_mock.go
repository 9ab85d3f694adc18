// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/deal-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCalculationsRepositoryInterface struct {
	mock.Mock
}

func (m *MockCalculationsRepositoryInterface) CreateMany(ctx context.Context, docs []*repository.CalculationDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockCalculationsRepositoryInterface) Recent(ctx context.Context, limit int) ([]repository.CalculationDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CalculationDocument), args.Error(1)
}

func (m *MockCalculationsRepositoryInterface) FindByQuantity(ctx context.Context, quantity int64, limit int) ([]repository.CalculationDocument, error) {
	args := m.Called(ctx, quantity, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CalculationDocument), args.Error(1)
}

func (m *MockCalculationsRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
