package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsapi/internal/model"
	"newsapi/internal/repository"
	repoMocks "newsapi/internal/repository/mocks"
	"newsapi/internal/storage"
	storeMocks "newsapi/internal/storage/mocks"
)

func newUploadService(store storage.Storage, repo repository.UploadRepository) *uploadService {
	s := NewUploadService(store, repo, "http://localhost:8000/").(*uploadService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	keyPrefix := "uploads/20240401_100000_"

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "cover photo.png",
			contentType:      "image/png",
			size:             11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, "_cover_photo.png") &&
						len(key) == len(keyPrefix)+8+len("_cover_photo.png")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "image/png",
					Metadata:    map[string]string{"original-filename": "cover photo.png"},
				}).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
					return storage.ObjectInfo{Key: key, Size: 11, ContentType: "image/png"}
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.Upload) bool {
					return strings.HasPrefix(u.URL, "http://localhost:8000/static/"+keyPrefix) &&
						u.StoragePath != "" && u.CreatedAt.Equal(fixedNow)
				})).Return(&model.Upload{ID: "gen-id"}, nil)

				return r
			},
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "test.png",
			contentType:      "image/png",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "non-image rejected",
			originalFilename: "notes.txt",
			contentType:      "text/plain",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				return strings.NewReader("hello")
			},
			wantErr: ErrUnsupportedMediaType,
		},
		{
			name:             "storage error",
			originalFilename: "test.png",
			contentType:      "image/png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "repository error with successful rollback",
			originalFilename: "test.png",
			contentType:      "image/png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, keyPrefix)
				})).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:             "repository error with failed rollback",
			originalFilename: "test.png",
			contentType:      "image/png",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockUploadRepository)
			svc := newUploadService(mStore, mRepo)

			r := tt.setupMocks(mStore, mRepo)

			rec, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rec)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUploadService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockUploadRepository)
		wantErr    error
		checkRes   func(t *testing.T, res *UploadListResult)
	}{
		{
			name:   "happy path",
			limit:  10,
			offset: 0,
			setupMocks: func(mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Upload]{
						Items: []model.Upload{{ID: "1"}, {ID: "2"}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *UploadListResult) {
				assert.Equal(t, 2, len(res.Items))
				assert.Equal(t, 2, res.Total)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Upload]{Items: []model.Upload{}, Total: 0}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUploadRepository)
			svc := NewUploadService(nil, mRepo, "")

			tt.setupMocks(mRepo)

			res, err := svc.List(ctx, tt.limit, tt.offset)

			if tt.wantErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUploadService_Delete(t *testing.T) {
	ctx := context.Background()
	rec := &model.Upload{ID: "u1", StoragePath: "uploads/a.png"}

	tests := []struct {
		name       string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "u1").Return(rec, nil)
				mStore.On("Delete", ctx, "uploads/a.png").Return(nil)
				mRepo.On("Delete", ctx, "u1").Return(nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "u1").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage failure keeps record",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockUploadRepository) {
				mRepo.On("FindByID", ctx, "u1").Return(rec, nil)
				mStore.On("Delete", ctx, "uploads/a.png").Return(errors.New("bucket gone"))
			},
			wantErrMsg: "delete storage: bucket gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockUploadRepository)
			svc := NewUploadService(mStore, mRepo, "")
			tt.setupMocks(mStore, mRepo)

			err := svc.Delete(ctx, "u1")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				mRepo.AssertNotCalled(t, "Delete", ctx, "u1")
			default:
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestUploadService_Open(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	svc := NewUploadService(mStore, nil, "")

	mStore.On("Get", ctx, "uploads/missing.png").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)
	mStore.On("Get", ctx, "../etc/passwd").Return(nil, storage.ObjectInfo{}, storage.ErrInvalidKey)
	mStore.On("Get", ctx, "uploads/a.png").Return(io.NopCloser(strings.NewReader("png")), storage.ObjectInfo{ContentType: "image/png"}, nil)

	_, _, err := svc.Open(ctx, "uploads/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = svc.Open(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)

	rc, info, err := svc.Open(ctx, "uploads/a.png")
	assert.NoError(t, err)
	assert.Equal(t, "image/png", info.ContentType)
	assert.NoError(t, rc.Close())
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"cover.png":            "cover.png",
		"my photo (1).JPG":     "my_photo__1_.JPG",
		"../../etc/passwd":     "passwd",
		`C:\Users\me\shot.png`: "shot.png",
		".hidden.png":          "hidden.png",
		"":                     "file",
		"..":                   "file",
		"é.png":                "__.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.True(t, IsImage("IMAGE/JPEG"))
	assert.False(t, IsImage("application/pdf"))
	assert.False(t, IsImage(""))
}
