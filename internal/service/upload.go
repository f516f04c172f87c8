package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsapi/internal/model"
	"newsapi/internal/repository"
	"newsapi/internal/storage"
)

// UploadPrefix is the key prefix of every uploaded image.
const UploadPrefix = "uploads"

// UploadListResult is the service-level DTO for paginated uploads.
type UploadListResult struct {
	Items []model.Upload `json:"data"`
	Total int            `json:"total"`
}

// UploadService defines the use cases for handling uploaded images.
type UploadService interface {
	// Upload stores the image, saves its metadata, and rolls back storage if the metadata save fails.
	// originalFilename is kept, sanitized, as the tail of the stored key.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Upload, error)

	// List returns upload records using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*UploadListResult, error)

	// Get returns a single upload record by its ID.
	Get(ctx context.Context, id string) (*model.Upload, error)

	// Delete removes an upload from both storage and repository.
	Delete(ctx context.Context, id string) error

	// Open streams a stored object by key for the static route.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

// uploadService is a concrete implementation of UploadService.
type uploadService struct {
	store   storage.Storage
	repo    repository.UploadRepository
	baseURL string
	now     func() time.Time
}

// NewUploadService constructs a new UploadService. Public URLs are built as
// publicBaseURL + "/static/" + key.
func NewUploadService(store storage.Storage, repo repository.UploadRepository, publicBaseURL string) UploadService {
	return &uploadService{
		store:   store,
		repo:    repo,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		now:     utcNow,
	}
}

// IsImage reports whether contentType is an image media type.
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// ObjectKey builds uploads/<YYYYMMDD_HHMMSS>_<8 hex>_<sanitized name>.
func ObjectKey(now time.Time, originalFilename string) string {
	return path.Join(UploadPrefix, fmt.Sprintf("%s_%s_%s",
		now.Format("20060102_150405"),
		uuid.New().String()[:8],
		SanitizeFilename(originalFilename),
	))
}

// SanitizeFilename drops any directory part and replaces characters outside [A-Za-z0-9._-] with '_'.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	b := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			b = append(b, c)
		default:
			b = append(b, '_')
		}
	}
	s := strings.TrimLeft(string(b), ".")
	if s == "" {
		return "file"
	}
	return s
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Upload, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !IsImage(contentType) {
		return nil, ErrUnsupportedMediaType
	}

	now := s.now()
	key := ObjectKey(now, originalFilename)

	// Upload to object storage
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Save metadata to database
	rec := &model.Upload{
		Filename:    path.Base(key),
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		URL:         s.baseURL + "/static/" + key,
		CreatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns paginated uploads without exposing repository types.
func (s *uploadService) List(ctx context.Context, limit, offset int) (*UploadListResult, error) {
	res, err := s.repo.List(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &UploadListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *uploadService) Get(ctx context.Context, id string) (*model.Upload, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return rec, nil
}

// Delete removes an upload from storage, then deletes its record.
func (s *uploadService) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Storage first; if this fails the record stays so the object can still be found.
	if err := s.store.Delete(ctx, rec.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return translate(s.repo.Delete(ctx, id))
}

func (s *uploadService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}
