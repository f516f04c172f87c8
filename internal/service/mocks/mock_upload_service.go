package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"newsapi/internal/model"
	"newsapi/internal/service"
	"newsapi/internal/storage"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Upload, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, limit, offset int) (*service.UploadListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadListResult), args.Error(1)
}

func (m *MockUploadService) Get(ctx context.Context, id string) (*model.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Upload), args.Error(1)
}

func (m *MockUploadService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
