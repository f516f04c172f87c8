package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsapi/internal/repository"
)

// newestFirst is the listing order of every collection.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// crud holds the operations shared by all collections. D is the stored document,
// M the model it converts to.
type crud[M, D any] struct {
	coll    Collection
	toModel func(D) M
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}

func (c crud[M, D]) findOne(ctx context.Context, filter any) (*M, error) {
	var doc D
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	m := c.toModel(doc)
	return &m, nil
}

func (c crud[M, D]) findByID(ctx context.Context, id string) (*M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

func (c crud[M, D]) find(ctx context.Context, filter any, pq repository.PageQuery) ([]M, error) {
	opts := options.Find().SetSort(newestFirst)
	if pq.Offset > 0 {
		opts.SetSkip(int64(pq.Offset))
	}
	if pq.Limit > 0 {
		opts.SetLimit(int64(pq.Limit))
	}

	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]M, 0, len(docs))
	for _, d := range docs {
		items = append(items, c.toModel(d))
	}
	return items, nil
}

func (c crud[M, D]) count(ctx context.Context, filter any) (int, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// insert stores doc under id and reads it back.
func (c crud[M, D]) insert(ctx context.Context, id bson.ObjectID, doc D) (*M, error) {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
		}
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": id})
}

// set applies a $set to the single document matching filter. Matching but not
// modifying (identical values) is success.
func (c crud[M, D]) set(ctx context.Context, filter any, fields bson.M) error {
	res, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (c crud[M, D]) updateByID(ctx context.Context, id string, fields bson.M) (*M, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := c.set(ctx, bson.M{"_id": oid}, fields); err != nil {
		return nil, err
	}
	return c.findOne(ctx, bson.M{"_id": oid})
}

func (c crud[M, D]) deleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
