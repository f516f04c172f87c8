package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsapi/internal/database"
)

// IndexSource hands out index views per collection. *database.Mongo satisfies it.
type IndexSource interface {
	Indexes(collection string) database.Indexer
}

// IndexStep is one index to create on one collection.
type IndexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
	// Optional steps log and continue on failure instead of aborting startup.
	Optional bool
}

// Steps returns the ordered index bootstrap for the given news expiry.
func Steps(newsTTLSeconds int32) []IndexStep {
	return []IndexStep{
		{
			Name:       "create_ttl_index_news_created_at",
			Collection: database.CollectionNews,
			Model:      database.TTLIndex("created_at", newsTTLSeconds),
			Optional:   true,
		},
		{
			Name:       "create_index_news_slug_status",
			Collection: database.CollectionNews,
			Model: mongo.IndexModel{
				Keys: bson.D{{Key: "slug", Value: 1}, {Key: "status", Value: 1}},
			},
			Optional: true,
		},
		{
			Name:       "create_index_updates_created_at",
			Collection: database.CollectionUpdates,
			Model: mongo.IndexModel{
				Keys: bson.D{{Key: "created_at", Value: -1}},
			},
			Optional: true,
		},
		{
			Name:       "create_unique_index_admins_email",
			Collection: database.CollectionAdmins,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			Optional: true,
		},
	}
}

// EnsureIndexes applies the index steps in order. A failing optional step is logged and skipped;
// a failing required step aborts with an error.
func EnsureIndexes(ctx context.Context, src IndexSource, log *slog.Logger, newsTTLSeconds int32) error {
	return run(ctx, src, log, Steps(newsTTLSeconds))
}

func run(ctx context.Context, src IndexSource, log *slog.Logger, steps []IndexStep) error {
	start := time.Now()
	log = log.With("component", "database")

	log.Info("db_index_bootstrap", "status", "starting", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		name, err := src.Indexes(step.Collection).CreateOne(ctx, step.Model)
		if err != nil {
			if step.Optional {
				log.Warn("db_index_step_skipped",
					"status", "error",
					"index_step", step.Name,
					"collection", step.Collection,
					"error_message", err.Error(),
					"step_duration_ms", time.Since(stepStart).Milliseconds(),
				)
				continue
			}
			log.Error("db_index_bootstrap_failed",
				"status", "error",
				"index_step", step.Name,
				"collection", step.Collection,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return fmt.Errorf("index step %s failed: %w", step.Name, err)
		}

		log.Info("db_index_step",
			"status", "success",
			"index_step", step.Name,
			"collection", step.Collection,
			"index_name", name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_index_bootstrap", "status", "success", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
