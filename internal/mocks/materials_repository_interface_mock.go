// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/litoflex/quote-service/internal/domain/model"
)

type MockMaterialsRepositoryInterface struct {
	mock.Mock
}

func (m *MockMaterialsRepositoryInterface) Seed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMaterialsRepositoryInterface) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockMaterialsRepositoryInterface) List(ctx context.Context, kind string) ([]model.Material, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockMaterialsRepositoryInterface) UpdateValue(ctx context.Context, code string, valuePerM2 float64) (*model.Material, error) {
	args := m.Called(ctx, code, valuePerM2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}
