package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsapi/internal/model"
	"newsapi/internal/repository"
)

func TestAdminMongo_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewAdminMongo(coll)
		coll.On("FindOne", ctx, bson.M{"email": "admin@example.com"}).
			Return(found(adminDocument{ID: bson.NewObjectID(), Email: "admin@example.com", Password: "$2a$10$hash"})).Once()

		got, err := repo.FindByEmail(ctx, "admin@example.com")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", got.Email)
		assert.Equal(t, "$2a$10$hash", got.PasswordHash)
	})

	t.Run("absent", func(t *testing.T) {
		coll := new(mockCollection)
		repo := NewAdminMongo(coll)
		coll.On("FindOne", ctx, bson.M{"email": "nobody@example.com"}).Return(missing()).Once()

		got, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestAdminMongo_Create(t *testing.T) {
	ctx := context.Background()
	coll := new(mockCollection)
	repo := NewAdminMongo(coll)

	coll.On("InsertOne", ctx, mock.MatchedBy(func(d adminDocument) bool {
		return d.Email == "admin@example.com" && d.Password == "hash"
	})).Return(&mongo.InsertOneResult{}, nil).Once()
	coll.On("FindOne", ctx, mock.Anything).
		Return(found(adminDocument{ID: bson.NewObjectID(), Email: "admin@example.com", Password: "hash"})).Once()

	got, err := repo.Create(ctx, &model.Admin{Email: "admin@example.com", PasswordHash: "hash"})

	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	coll.AssertExpectations(t)
}

func TestAdminMongo_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		matched int64
		wantErr error
	}{
		{name: "updated", matched: 1},
		{name: "unknown admin", matched: 0, wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(mockCollection)
			repo := NewAdminMongo(coll)
			coll.On("UpdateOne", ctx, bson.M{"email": "admin@example.com"}, bson.M{"$set": bson.M{"password": "new"}}).
				Return(&mongo.UpdateResult{MatchedCount: tt.matched}, nil).Once()

			err := repo.UpdatePassword(ctx, "admin@example.com", "new")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			coll.AssertExpectations(t)
		})
	}
}

func TestAdminMongo_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	coll := new(mockCollection)
	repo := NewAdminMongo(coll)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	coll.On("InsertOne", ctx, mock.Anything).Return(nil, dup).Once()

	got, err := repo.Create(ctx, &model.Admin{Email: "admin@example.com", PasswordHash: "hash"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.Nil(t, got)
}
