package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type MockUpdateRepository struct {
	mock.Mock
}

func (m *MockUpdateRepository) Create(ctx context.Context, u *model.Update) (*model.Update, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdateRepository) FindByID(ctx context.Context, id string) (*model.Update, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdateRepository) List(ctx context.Context, category string, pq repository.PageQuery) ([]model.Update, error) {
	args := m.Called(ctx, category, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Update), args.Error(1)
}

func (m *MockUpdateRepository) Update(ctx context.Context, id string, patch model.UpdatePatch, updatedAt time.Time) (*model.Update, error) {
	args := m.Called(ctx, id, patch, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Update), args.Error(1)
}

func (m *MockUpdateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
