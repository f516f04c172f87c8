package repository

import (
	"context"
	"time"

	"newsapi/internal/model"
)

// UpdateRepository defines persistence for update notices.
type UpdateRepository interface {
	Create(ctx context.Context, u *model.Update) (*model.Update, error)
	FindByID(ctx context.Context, id string) (*model.Update, error)
	// List returns notices, optionally of one category, newest first.
	List(ctx context.Context, category string, pq PageQuery) ([]model.Update, error)
	Update(ctx context.Context, id string, patch model.UpdatePatch, updatedAt time.Time) (*model.Update, error)
	Delete(ctx context.Context, id string) error
}
