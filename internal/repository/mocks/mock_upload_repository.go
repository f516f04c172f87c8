package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) Create(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadRepository) FindByID(ctx context.Context, id string) (*model.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Upload], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Upload]), args.Error(1)
}

func (m *MockUploadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
