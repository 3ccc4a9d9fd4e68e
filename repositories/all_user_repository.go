package repositories

import (
	"context"

	"github.com/xpsc-club/xpsc-server/db"
	"github.com/xpsc-club/xpsc-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AllUserRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	GetByEmail(ctx context.Context, email string) (models.Document, error)
	Create(ctx context.Context, user models.Document) (*models.InsertResult, error)
	Update(ctx context.Context, id string, fields models.AllUserFields) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

type mongoAllUserRepository struct {
	coll *mongo.Collection
}

func NewMongoAllUserRepository(database *mongo.Database) AllUserRepository {
	return &mongoAllUserRepository{coll: database.Collection(db.AllUsersCollection)}
}

func (r *mongoAllUserRepository) List(ctx context.Context) ([]models.Document, error) {
	return findAll(ctx, r.coll, bson.M{})
}

// GetByEmail returns nil when no user carries the email.
func (r *mongoAllUserRepository) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	return findOne(ctx, r.coll, bson.M{"email": email})
}

func (r *mongoAllUserRepository) Create(ctx context.Context, user models.Document) (*models.InsertResult, error) {
	return insertOne(ctx, r.coll, user)
}

func (r *mongoAllUserRepository) Update(ctx context.Context, id string, fields models.AllUserFields) (*models.UpdateResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return setFields(ctx, r.coll, oid, fields)
}

func (r *mongoAllUserRepository) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return deleteOne(ctx, r.coll, oid)
}
