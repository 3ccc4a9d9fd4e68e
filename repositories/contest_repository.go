package repositories

import (
	"context"

	"github.com/xpsc-club/xpsc-server/db"
	"github.com/xpsc-club/xpsc-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContestRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByID(ctx context.Context, id string) (models.Document, error)
	// GetByContestID looks a contest up by its Codeforces number.
	GetByContestID(ctx context.Context, contestID int64) (models.Document, error)
	Create(ctx context.Context, contest models.Document) (*models.InsertResult, error)
	Update(ctx context.Context, id string, fields models.ContestFields) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type mongoContestRepository struct {
	coll *mongo.Collection
}

func NewMongoContestRepository(database *mongo.Database) ContestRepository {
	return &mongoContestRepository{coll: database.Collection(db.ContestListCollection)}
}

func (r *mongoContestRepository) List(ctx context.Context) ([]models.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

func (r *mongoContestRepository) GetByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findOne(ctx, r.coll, byID(oid))
}

func (r *mongoContestRepository) GetByContestID(ctx context.Context, contestID int64) (models.Document, error) {
	return findOne(ctx, r.coll, bson.M{"contestId": contestID})
}

func (r *mongoContestRepository) Create(ctx context.Context, contest models.Document) (*models.InsertResult, error) {
	return insertOne(ctx, r.coll, contest)
}

func (r *mongoContestRepository) Update(ctx context.Context, id string, fields models.ContestFields) (*models.UpdateResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return setFields(ctx, r.coll, oid, fields)
}

// Delete leaves the contest's results in place.
func (r *mongoContestRepository) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return deleteOne(ctx, r.coll, oid)
}
