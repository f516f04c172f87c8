package service

import (
	"context"
	"time"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

// UpdatesService defines the use cases for update notices. It mirrors NewsService
// without slugs or statuses.
type UpdatesService interface {
	List(ctx context.Context, q model.UpdateQuery) ([]model.Update, error)
	GetByID(ctx context.Context, id string) (*model.Update, error)
	Create(ctx context.Context, in model.UpdateInput) (*model.Update, error)
	Update(ctx context.Context, id string, patch model.UpdatePatch) (*model.Update, error)
	Delete(ctx context.Context, id string) error
}

type updatesService struct {
	repo repository.UpdateRepository
	now  func() time.Time
}

func NewUpdatesService(repo repository.UpdateRepository) UpdatesService {
	return &updatesService{repo: repo, now: utcNow}
}

func (s *updatesService) List(ctx context.Context, q model.UpdateQuery) ([]model.Update, error) {
	return s.repo.List(ctx, q.Category, pageQuery(q.Limit, q.Skip))
}

func (s *updatesService) GetByID(ctx context.Context, id string) (*model.Update, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *updatesService) Create(ctx context.Context, in model.UpdateInput) (*model.Update, error) {
	return s.repo.Create(ctx, in.Update(s.now()))
}

func (s *updatesService) Update(ctx context.Context, id string, patch model.UpdatePatch) (*model.Update, error) {
	u, err := s.repo.Update(ctx, id, patch, s.now())
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *updatesService) Delete(ctx context.Context, id string) error {
	return translate(s.repo.Delete(ctx, id))
}
