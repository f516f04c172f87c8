package service

import (
	"context"
	"time"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

// NewsService defines the use cases for news articles.
type NewsService interface {
	// List returns articles newest first. Status defaults to published; "all" disables the status filter.
	List(ctx context.Context, q model.NewsQuery) ([]model.Article, error)

	// GetBySlug returns a published article. Drafts are reported as ErrNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	// GetByID returns an article of any status.
	GetByID(ctx context.Context, id string) (*model.Article, error)

	// Create stamps created_at and updated_at and stores the article.
	Create(ctx context.Context, in model.ArticleInput) (*model.Article, error)

	// Update applies a sparse patch and refreshes updated_at, even when the patch is empty.
	Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error)

	// Delete removes an article. Deleting twice yields ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewNewsService constructs a new NewsService.
func NewNewsService(repo repository.ArticleRepository) NewsService {
	return &newsService{repo: repo, now: utcNow}
}

func (s *newsService) List(ctx context.Context, q model.NewsQuery) ([]model.Article, error) {
	f := repository.ArticleFilter{Status: q.Status, Category: q.Category}
	switch f.Status {
	case "":
		f.Status = model.StatusPublished
	case model.StatusAll:
		f.Status = ""
	}
	return s.repo.List(ctx, f, pageQuery(q.Limit, q.Skip))
}

func (s *newsService) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	a, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *newsService) GetByID(ctx context.Context, id string) (*model.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *newsService) Create(ctx context.Context, in model.ArticleInput) (*model.Article, error) {
	return s.repo.Create(ctx, in.Article(s.now()))
}

func (s *newsService) Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error) {
	a, err := s.repo.Update(ctx, id, patch, s.now())
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	return translate(s.repo.Delete(ctx, id))
}
