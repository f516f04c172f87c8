package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

type uploadDocument struct {
	ID          bson.ObjectID `bson:"_id"`
	Filename    string        `bson:"filename"`
	StoragePath string        `bson:"storage_path"`
	Size        int64         `bson:"size"`
	ContentType string        `bson:"content_type"`
	URL         string        `bson:"url"`
	CreatedAt   time.Time     `bson:"created_at"`
}

func (d uploadDocument) asModel() model.Upload {
	return model.Upload{
		ID:          d.ID.Hex(),
		Filename:    d.Filename,
		StoragePath: d.StoragePath,
		Size:        d.Size,
		ContentType: d.ContentType,
		URL:         d.URL,
		CreatedAt:   d.CreatedAt,
	}
}

// UploadMongo is a MongoDB implementation of repository.UploadRepository.
// It contains no business logic.
type UploadMongo struct {
	crud[model.Upload, uploadDocument]
}

// NewUploadMongo creates a new UploadMongo repository.
func NewUploadMongo(coll Collection) *UploadMongo {
	return &UploadMongo{crud[model.Upload, uploadDocument]{coll: coll, toModel: uploadDocument.asModel}}
}

var _ repository.UploadRepository = (*UploadMongo)(nil)

// Create inserts a new upload record and returns the stored record.
func (r *UploadMongo) Create(ctx context.Context, u *model.Upload) (*model.Upload, error) {
	id := bson.NewObjectID()
	return r.insert(ctx, id, uploadDocument{
		ID:          id,
		Filename:    u.Filename,
		StoragePath: u.StoragePath,
		Size:        u.Size,
		ContentType: u.ContentType,
		URL:         u.URL,
		CreatedAt:   u.CreatedAt,
	})
}

// FindByID fetches a single upload record by its ID.
func (r *UploadMongo) FindByID(ctx context.Context, id string) (*model.Upload, error) {
	return r.findByID(ctx, id)
}

// List returns upload records newest first and the total count.
func (r *UploadMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Upload], error) {
	total, err := r.count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	items, err := r.find(ctx, bson.M{}, pq)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Upload]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes an upload record by ID.
func (r *UploadMongo) Delete(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
