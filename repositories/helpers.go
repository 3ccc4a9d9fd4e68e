package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/xpsc-club/xpsc-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInvalidID = errors.New("invalid document id")

// ParseObjectID converts a hex path parameter into a document id.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

// pageOptions builds the skip/limit window with a single-field sort.
// Ties are left to the store's iteration order.
func pageOptions(page models.Page, sortField string, dir models.SortDirection) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: sortField, Value: int(dir)}}).
		SetSkip(page.Skip()).
		SetLimit(page.Limit())
}

// findOne returns a nil document when nothing matches.
func findOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (models.Document, error) {
	var doc models.Document
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one in %s: %w", coll.Name(), err)
	}
	return doc, nil
}

// findAll always returns a non-nil slice so an empty match encodes as [].
func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]models.Document, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s cursor: %w", coll.Name(), err)
	}
	return docs, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc models.Document) (*models.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// setFields replaces the given field set on the document with the id.
// A missing document is a zero-count success.
func setFields(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, fields interface{}) (*models.UpdateResult, error) {
	res, err := coll.UpdateOne(ctx, byID(id), bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	return toUpdateResult(res), nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func deleteMany(ctx context.Context, coll *mongo.Collection, filter interface{}) (*models.DeleteResult, error) {
	res, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete many from %s: %w", coll.Name(), err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func countDocuments(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n, nil
}

func toUpdateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
