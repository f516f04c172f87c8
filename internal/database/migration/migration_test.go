package migration

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsapi/internal/database"
	"newsapi/internal/logger"
)

type fakeIndexer struct {
	collection string
	src        *fakeSource
}

func (f fakeIndexer) CreateOne(ctx context.Context, model mongo.IndexModel, opts ...options.Lister[options.CreateIndexesOptions]) (string, error) {
	f.src.calls = append(f.src.calls, f.collection)
	if err, ok := f.src.fail[f.collection]; ok {
		return "", err
	}
	return f.collection + "_idx", nil
}

type fakeSource struct {
	fail  map[string]error
	calls []string
}

func (f *fakeSource) Indexes(collection string) database.Indexer {
	return fakeIndexer{collection: collection, src: f}
}

func TestSteps(t *testing.T) {
	steps := Steps(2592000)
	require.Len(t, steps, 4)

	ttl := steps[0]
	assert.Equal(t, database.CollectionNews, ttl.Collection)
	assert.True(t, ttl.Optional)
	assert.Equal(t, bson.D{{Key: "created_at", Value: 1}}, ttl.Model.Keys)

	for _, s := range steps {
		assert.True(t, s.Optional, "index step %s must not abort startup", s.Name)
	}
}

func TestEnsureIndexes(t *testing.T) {
	ctx := context.Background()

	t.Run("all steps succeed", func(t *testing.T) {
		var buf bytes.Buffer
		src := &fakeSource{}

		err := EnsureIndexes(ctx, src, logger.New(&buf, "info", time.UTC), 60)

		assert.NoError(t, err)
		assert.Equal(t, []string{"news", "news", "updates", "admins"}, src.calls)
		assert.Contains(t, buf.String(), `"msg":"db_index_step"`)
		assert.Contains(t, buf.String(), `"status":"success"`)
	})

	t.Run("ttl failure is non-fatal", func(t *testing.T) {
		var buf bytes.Buffer
		src := &fakeSource{fail: map[string]error{"news": errors.New("IndexOptionsConflict")}}

		err := EnsureIndexes(ctx, src, logger.New(&buf, "info", time.UTC), 60)

		assert.NoError(t, err)
		assert.Len(t, src.calls, 4)
		assert.Equal(t, 2, strings.Count(buf.String(), "db_index_step_skipped"))
		assert.Contains(t, buf.String(), "IndexOptionsConflict")
	})

	t.Run("required step failure aborts", func(t *testing.T) {
		var buf bytes.Buffer
		src := &fakeSource{fail: map[string]error{"admins": errors.New("duplicate key")}}
		steps := []IndexStep{
			{Name: "required", Collection: "admins", Model: mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
			{Name: "never_reached", Collection: "news", Model: mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}}},
		}

		err := run(ctx, src, logger.New(&buf, "info", time.UTC), steps)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "index step required failed: duplicate key")
		assert.Equal(t, []string{"admins"}, src.calls)
		assert.Contains(t, buf.String(), "db_index_bootstrap_failed")
	})
}
