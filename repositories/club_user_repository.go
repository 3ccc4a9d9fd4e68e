package repositories

import (
	"context"

	"github.com/xpsc-club/xpsc-server/db"
	"github.com/xpsc-club/xpsc-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	clubUserMaxRatingField = "codeforcesMaxRating"
	clubUserImageField     = "image"
)

type ClubUserRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	// Leaderboard returns one page of members ordered by max rating, highest first.
	Leaderboard(ctx context.Context, page models.Page) ([]models.Document, error)
	GetByID(ctx context.Context, id string) (models.Document, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, member models.Document) (*models.InsertResult, error)
	Update(ctx context.Context, id string, fields models.ClubUserFields) (*models.UpdateResult, error)
	SetImage(ctx context.Context, id string, imageURL string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type mongoClubUserRepository struct {
	coll *mongo.Collection
}

func NewMongoClubUserRepository(database *mongo.Database) ClubUserRepository {
	return &mongoClubUserRepository{coll: database.Collection(db.ClubUsersCollection)}
}

func (r *mongoClubUserRepository) List(ctx context.Context) ([]models.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

func (r *mongoClubUserRepository) Leaderboard(ctx context.Context, page models.Page) ([]models.Document, error) {
	return findAll(ctx, r.coll, bson.M{}, pageOptions(page, clubUserMaxRatingField, models.SortDescending))
}

func (r *mongoClubUserRepository) GetByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return findOne(ctx, r.coll, byID(oid))
}

func (r *mongoClubUserRepository) Count(ctx context.Context) (int64, error) {
	return countDocuments(ctx, r.coll, bson.M{})
}

func (r *mongoClubUserRepository) Create(ctx context.Context, member models.Document) (*models.InsertResult, error) {
	return insertOne(ctx, r.coll, member)
}

func (r *mongoClubUserRepository) Update(ctx context.Context, id string, fields models.ClubUserFields) (*models.UpdateResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return setFields(ctx, r.coll, oid, fields)
}

func (r *mongoClubUserRepository) SetImage(ctx context.Context, id string, imageURL string) (*models.UpdateResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return setFields(ctx, r.coll, oid, bson.M{clubUserImageField: imageURL})
}

func (r *mongoClubUserRepository) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return deleteOne(ctx, r.coll, oid)
}
