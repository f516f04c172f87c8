package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsapi/internal/model"
)

type MockUpdatesService struct {
	mock.Mock
}

func (m *MockUpdatesService) List(ctx context.Context, q model.UpdateQuery) ([]model.Update, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Update), args.Error(1)
}

func (m *MockUpdatesService) GetByID(ctx context.Context, id string) (*model.Update, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdatesService) Create(ctx context.Context, in model.UpdateInput) (*model.Update, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdatesService) Update(ctx context.Context, id string, patch model.UpdatePatch) (*model.Update, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdatesService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
