package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type articleDocument struct {
	ID              bson.ObjectID `bson:"_id"`
	Title           string        `bson:"title"`
	Slug            string        `bson:"slug"`
	Content         string        `bson:"content"`
	Category        string        `bson:"category"`
	Language        string        `bson:"language"`
	CoverImageURL   *string       `bson:"cover_image_url"`
	Status          string        `bson:"status"`
	MetaTitle       *string       `bson:"meta_title"`
	MetaDescription *string       `bson:"meta_description"`
	CreatedAt       time.Time     `bson:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at"`
}

func (d articleDocument) asModel() model.Article {
	return model.Article{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Slug:            d.Slug,
		Content:         d.Content,
		Category:        d.Category,
		Language:        d.Language,
		CoverImageURL:   d.CoverImageURL,
		Status:          d.Status,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ArticleMongo is a MongoDB implementation of repository.ArticleRepository.
type ArticleMongo struct {
	crud[model.Article, articleDocument]
}

// NewArticleMongo creates a new ArticleMongo repository on the news collection.
func NewArticleMongo(coll Collection) *ArticleMongo {
	return &ArticleMongo{crud[model.Article, articleDocument]{coll: coll, toModel: articleDocument.asModel}}
}

var _ repository.ArticleRepository = (*ArticleMongo)(nil)

// Create inserts the article under a fresh id. Any ID on a is ignored.
func (r *ArticleMongo) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	id := bson.NewObjectID()
	return r.insert(ctx, id, articleDocument{
		ID:              id,
		Title:           a.Title,
		Slug:            a.Slug,
		Content:         a.Content,
		Category:        a.Category,
		Language:        a.Language,
		CoverImageURL:   a.CoverImageURL,
		Status:          a.Status,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	})
}

func (r *ArticleMongo) FindByID(ctx context.Context, id string) (*model.Article, error) {
	return r.findByID(ctx, id)
}

func (r *ArticleMongo) FindPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "status": model.StatusPublished})
}

func (r *ArticleMongo) List(ctx context.Context, f repository.ArticleFilter, pq repository.PageQuery) ([]model.Article, error) {
	return r.find(ctx, articleFilter(f), pq)
}

func (r *ArticleMongo) Update(ctx context.Context, id string, patch model.ArticlePatch, updatedAt time.Time) (*model.Article, error) {
	return r.updateByID(ctx, id, articleSet(patch, updatedAt))
}

func (r *ArticleMongo) Delete(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}

func articleFilter(f repository.ArticleFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter
}

// articleSet converts the supplied patch fields into a $set document.
// created_at is never part of it.
func articleSet(p model.ArticlePatch, updatedAt time.Time) bson.M {
	set := bson.M{"updated_at": updatedAt}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("title", p.Title)
	put("slug", p.Slug)
	put("content", p.Content)
	put("category", p.Category)
	put("language", p.Language)
	put("cover_image_url", p.CoverImageURL)
	put("status", p.Status)
	put("meta_title", p.MetaTitle)
	put("meta_description", p.MetaDescription)
	return set
}
