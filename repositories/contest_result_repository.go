package repositories

import (
	"context"

	"github.com/xpsc-club/xpsc-server/db"
	"github.com/xpsc-club/xpsc-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContestResultRepository interface {
	// CountByContest counts results of a contest; a nil participation counts all of them.
	CountByContest(ctx context.Context, contestID int64, participation *models.Participation) (int64, error)
	// ListByContest returns one page of a partition ordered by global standings.
	ListByContest(ctx context.Context, contestID int64, participation models.Participation, page models.Page) ([]models.Document, error)
	GetByContestAndUser(ctx context.Context, contestID int64, userName string) (models.Document, error)
	Create(ctx context.Context, result models.Document) (*models.InsertResult, error)
	DeleteByContest(ctx context.Context, contestID int64) (*models.DeleteResult, error)
	DeleteByUserName(ctx context.Context, userName string) (*models.DeleteResult, error)
}

type mongoContestResultRepository struct {
	coll *mongo.Collection
}

func NewMongoContestResultRepository(database *mongo.Database) ContestResultRepository {
	return &mongoContestResultRepository{coll: database.Collection(db.ContestResultsCollection)}
}

// contestFilter is the single place the participate flag reaches a query.
func contestFilter(contestID int64, participation *models.Participation) bson.M {
	filter := bson.M{models.ResultContestIDField: contestID}
	if participation != nil {
		filter[models.ResultParticipateField] = participation.StoredValue()
	}
	return filter
}

func (r *mongoContestResultRepository) CountByContest(ctx context.Context, contestID int64, participation *models.Participation) (int64, error) {
	return countDocuments(ctx, r.coll, contestFilter(contestID, participation))
}

func (r *mongoContestResultRepository) ListByContest(ctx context.Context, contestID int64, participation models.Participation, page models.Page) ([]models.Document, error) {
	return findAll(ctx, r.coll,
		contestFilter(contestID, &participation),
		pageOptions(page, models.ResultStandingsField, models.SortAscending),
	)
}

func (r *mongoContestResultRepository) GetByContestAndUser(ctx context.Context, contestID int64, userName string) (models.Document, error) {
	return findOne(ctx, r.coll, bson.M{
		models.ResultContestIDField: contestID,
		models.ResultUserNameField:  userName,
	})
}

func (r *mongoContestResultRepository) Create(ctx context.Context, result models.Document) (*models.InsertResult, error) {
	return insertOne(ctx, r.coll, result)
}

func (r *mongoContestResultRepository) DeleteByContest(ctx context.Context, contestID int64) (*models.DeleteResult, error) {
	return deleteMany(ctx, r.coll, contestFilter(contestID, nil))
}

func (r *mongoContestResultRepository) DeleteByUserName(ctx context.Context, userName string) (*models.DeleteResult, error) {
	return deleteMany(ctx, r.coll, bson.M{models.ResultUserNameField: userName})
}
