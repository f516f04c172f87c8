package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type updateDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	Title     string        `bson:"title"`
	Content   string        `bson:"content"`
	Category  string        `bson:"category"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func (d updateDocument) asModel() model.Update {
	return model.Update{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		Category:  d.Category,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// UpdateMongo is a MongoDB implementation of repository.UpdateRepository.
type UpdateMongo struct {
	crud[model.Update, updateDocument]
}

func NewUpdateMongo(coll Collection) *UpdateMongo {
	return &UpdateMongo{crud[model.Update, updateDocument]{coll: coll, toModel: updateDocument.asModel}}
}

var _ repository.UpdateRepository = (*UpdateMongo)(nil)

func (r *UpdateMongo) Create(ctx context.Context, u *model.Update) (*model.Update, error) {
	id := bson.NewObjectID()
	return r.insert(ctx, id, updateDocument{
		ID:        id,
		Title:     u.Title,
		Content:   u.Content,
		Category:  u.Category,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
}

func (r *UpdateMongo) FindByID(ctx context.Context, id string) (*model.Update, error) {
	return r.findByID(ctx, id)
}

func (r *UpdateMongo) List(ctx context.Context, category string, pq repository.PageQuery) ([]model.Update, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter, pq)
}

func (r *UpdateMongo) Update(ctx context.Context, id string, patch model.UpdatePatch, updatedAt time.Time) (*model.Update, error) {
	set := bson.M{"updated_at": updatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	return r.updateByID(ctx, id, set)
}

func (r *UpdateMongo) Delete(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
