package repository

import (
	"context"
	"time"

	"newsapi/internal/model"
)

// ArticleFilter narrows an article listing. Empty fields do not filter.
type ArticleFilter struct {
	Status   string
	Category string
}

// ArticleRepository defines persistence for news articles.
// No business logic here: defaults and timestamps are decided by the caller.
type ArticleRepository interface {
	// Create stores a new article and returns it as read back from the store.
	Create(ctx context.Context, a *model.Article) (*model.Article, error)

	// FindByID returns an article by id regardless of status.
	FindByID(ctx context.Context, id string) (*model.Article, error)

	// FindPublishedBySlug returns the published article with the given slug.
	FindPublishedBySlug(ctx context.Context, slug string) (*model.Article, error)

	// List returns articles matching the filter, newest first.
	List(ctx context.Context, f ArticleFilter, pq PageQuery) ([]model.Article, error)

	// Update applies the supplied patch fields and sets updated_at. It returns the stored article.
	Update(ctx context.Context, id string, patch model.ArticlePatch, updatedAt time.Time) (*model.Article, error)

	// Delete removes an article. A missing article is ErrNotFound.
	Delete(ctx context.Context, id string) error
}
