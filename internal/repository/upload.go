package repository

import (
	"context"

	"newsapi/internal/model"
)

// UploadRepository defines persistence for upload metadata records.
type UploadRepository interface {
	// Create inserts a new upload record and returns the stored record.
	Create(ctx context.Context, u *model.Upload) (*model.Upload, error)

	// FindByID returns an upload record by its ID.
	FindByID(ctx context.Context, id string) (*model.Upload, error)

	// List returns a paginated list of upload records and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Upload], error)

	// Delete removes an upload record. A missing record is ErrNotFound.
	Delete(ctx context.Context, id string) error
}
