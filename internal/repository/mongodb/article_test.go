package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

func strPtr(s string) *string { return &s }

func sampleArticleDoc(now time.Time) articleDocument {
	return articleDocument{
		ID:        bson.NewObjectID(),
		Title:     "Board exam dates announced",
		Slug:      "board-exam-dates",
		Content:   "Exams start in March.",
		Category:  "Exams",
		Language:  "en",
		Status:    model.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestArticleMongo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("inserts then reads back", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)

		var inserted articleDocument
		coll.On("InsertOne", ctx, mock.MatchedBy(func(d articleDocument) bool {
			inserted = d
			return d.Slug == "board-exam-dates" && !d.ID.IsZero()
		})).Return(&mongo.InsertOneResult{}, nil).Once()
		coll.On("FindOne", ctx, mock.Anything).Return(found(sampleArticleDoc(now))).Once()

		in := sampleArticleDoc(now).asModel()
		in.ID = "client-supplied"
		got, err := repo.Create(ctx, &in)

		require.NoError(t, err)
		assert.Equal(t, "board-exam-dates", got.Slug)
		assert.NotEqual(t, "client-supplied", inserted.ID.Hex())
		assert.Nil(t, got.CoverImageURL)
		assert.True(t, now.Equal(got.CreatedAt))
		coll.AssertExpectations(t)
	})

	t.Run("insert error", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		coll.On("InsertOne", ctx, mock.Anything).Return(nil, errors.New("write failed")).Once()

		in := sampleArticleDoc(now).asModel()
		got, err := repo.Create(ctx, &in)

		assert.EqualError(t, err, "write failed")
		assert.Nil(t, got)
		coll.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})
}

func TestArticleMongo_FindByID(t *testing.T) {
	ctx := context.Background()
	doc := sampleArticleDoc(time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		id      string
		result  func() *mongo.SingleResult
		wantErr error
	}{
		{name: "found", id: doc.ID.Hex(), result: func() *mongo.SingleResult { return found(doc) }},
		{name: "not found", id: doc.ID.Hex(), result: missing, wantErr: repository.ErrNotFound},
		{name: "malformed id", id: "not-an-id", wantErr: repository.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(mockCollection)
			repo := NewArticleMongo(coll)
			if tt.result != nil {
				coll.On("FindOne", ctx, bson.M{"_id": doc.ID}).Return(tt.result()).Once()
			}

			got, err := repo.FindByID(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, doc.ID.Hex(), got.ID)
			}
			coll.AssertExpectations(t)
		})
	}
}

func TestArticleMongo_FindPublishedBySlug(t *testing.T) {
	ctx := context.Background()
	coll := new(mockCollection)
	repo := NewArticleMongo(coll)

	coll.On("FindOne", ctx, bson.M{"slug": "draft-post", "status": "published"}).Return(missing()).Once()

	got, err := repo.FindPublishedBySlug(ctx, "draft-post")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, got)
	coll.AssertExpectations(t)
}

func TestArticleMongo_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		newer, older := sampleArticleDoc(now), sampleArticleDoc(now.Add(-time.Hour))
		coll.On("Find", ctx, bson.M{"status": "published", "category": "Exams"}).
			Return(cursorOf(t, newer, older), nil).Once()

		items, err := repo.List(ctx, repository.ArticleFilter{Status: "published", Category: "Exams"}, repository.PageQuery{Limit: 10})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, newer.ID.Hex(), items[0].ID)
		assert.Equal(t, older.ID.Hex(), items[1].ID)
		coll.AssertExpectations(t)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		coll.On("Find", ctx, bson.M{}).Return(cursorOf(t), nil).Once()

		items, err := repo.List(ctx, repository.ArticleFilter{}, repository.PageQuery{})

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("find error", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		coll.On("Find", ctx, bson.M{}).Return(nil, errors.New("connection reset")).Once()

		items, err := repo.List(ctx, repository.ArticleFilter{}, repository.PageQuery{})

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestArticleMongo_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	doc := sampleArticleDoc(now)
	patch := model.ArticlePatch{Title: strPtr("New title")}

	t.Run("matched", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		filter := bson.M{"_id": doc.ID}
		coll.On("UpdateOne", ctx, filter, bson.M{"$set": bson.M{"title": "New title", "updated_at": now}}).
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
		coll.On("FindOne", ctx, filter).Return(found(doc)).Once()

		got, err := repo.Update(ctx, doc.ID.Hex(), patch, now)

		require.NoError(t, err)
		assert.Equal(t, doc.ID.Hex(), got.ID)
		coll.AssertExpectations(t)
	})

	t.Run("matched but unmodified is success", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		coll.On("UpdateOne", ctx, mock.Anything, mock.Anything).
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, nil).Once()
		coll.On("FindOne", ctx, mock.Anything).Return(found(doc)).Once()

		got, err := repo.Update(ctx, doc.ID.Hex(), patch, now)

		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)
		coll.On("UpdateOne", ctx, mock.Anything, mock.Anything).
			Return(&mongo.UpdateResult{}, nil).Once()

		got, err := repo.Update(ctx, doc.ID.Hex(), patch, now)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
		coll.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewArticleMongo(coll)

		_, err := repo.Update(ctx, "123", patch, now)

		assert.ErrorIs(t, err, repository.ErrInvalidID)
		coll.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArticleMongo_Delete(t *testing.T) {
	ctx := context.Background()
	oid := bson.NewObjectID()

	tests := []struct {
		name    string
		id      string
		deleted int64
		wantErr error
	}{
		{name: "deleted", id: oid.Hex(), deleted: 1},
		{name: "already gone", id: oid.Hex(), deleted: 0, wantErr: repository.ErrNotFound},
		{name: "malformed id", id: "zzz", wantErr: repository.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(mockCollection)
			repo := NewArticleMongo(coll)
			if tt.wantErr != repository.ErrInvalidID {
				coll.On("DeleteOne", ctx, bson.M{"_id": oid}).
					Return(&mongo.DeleteResult{DeletedCount: tt.deleted}, nil).Once()
			}

			err := repo.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			coll.AssertExpectations(t)
		})
	}
}

func TestArticleFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, articleFilter(repository.ArticleFilter{}))
	assert.Equal(t, bson.M{"status": "draft"}, articleFilter(repository.ArticleFilter{Status: "draft"}))
	assert.Equal(t, bson.M{"category": "Jobs"}, articleFilter(repository.ArticleFilter{Category: "Jobs"}))
}

func TestArticleSet(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty patch only touches updated_at", func(t *testing.T) {
		assert.Equal(t, bson.M{"updated_at": now}, articleSet(model.ArticlePatch{}, now))
	})

	t.Run("supplied empty string is kept", func(t *testing.T) {
		set := articleSet(model.ArticlePatch{MetaTitle: strPtr(""), Status: strPtr("published")}, now)
		assert.Equal(t, bson.M{"meta_title": "", "status": "published", "updated_at": now}, set)
		assert.NotContains(t, set, "created_at")
	})
}
