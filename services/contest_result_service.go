package services

import (
	"context"
	"strings"

	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/realtime"
	"github.com/xpsc-club/xpsc-server/repositories"
)

type ContestResultService interface {
	// CountResults counts one partition of a contest, or all of it when participation is nil.
	CountResults(ctx context.Context, contestID int64, participation *models.Participation) (int64, error)
	ListResults(ctx context.Context, contestID int64, participation models.Participation, page models.Page) ([]models.Document, error)
	GetUserResult(ctx context.Context, contestID int64, handle string) (models.Document, error)
	CreateResult(ctx context.Context, result models.Document) (*models.InsertResult, error)
	DeleteContestResults(ctx context.Context, contestID int64) (*models.DeleteResult, error)
	DeleteUserResults(ctx context.Context, handle string) (*models.DeleteResult, error)
}

type contestResultService struct {
	resultRepo repositories.ContestResultRepository
	events     EventPublisher
}

func NewContestResultService(resultRepo repositories.ContestResultRepository, events EventPublisher) ContestResultService {
	return &contestResultService{
		resultRepo: resultRepo,
		events:     events,
	}
}

func (s *contestResultService) CountResults(ctx context.Context, contestID int64, participation *models.Participation) (int64, error) {
	n, err := s.resultRepo.CountByContest(ctx, contestID, participation)
	if err != nil {
		return 0, translateRepoError(err, "failed to count contest results")
	}
	return n, nil
}

func (s *contestResultService) ListResults(ctx context.Context, contestID int64, participation models.Participation, page models.Page) ([]models.Document, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.ListByContest(ctx, contestID, participation, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to list contest results")
	}
	return results, nil
}

func (s *contestResultService) GetUserResult(ctx context.Context, contestID int64, handle string) (models.Document, error) {
	if strings.TrimSpace(handle) == "" {
		return nil, ErrMissingHandle
	}
	result, err := s.resultRepo.GetByContestAndUser(ctx, contestID, handle)
	if err != nil {
		return nil, translateRepoError(err, "failed to get contest result")
	}
	return result, nil
}

func (s *contestResultService) CreateResult(ctx context.Context, result models.Document) (*models.InsertResult, error) {
	res, err := s.resultRepo.Create(ctx, result)
	if err != nil {
		return nil, translateRepoError(err, "failed to create contest result")
	}
	if contestID, ok := int64Field(result, models.ResultContestIDField); ok {
		s.events.BroadcastToRoom(realtime.ContestRoom(contestID), realtime.Event{
			Type: realtime.EventContestResultAdded,
			Payload: map[string]interface{}{
				"id":        res.InsertedID,
				"contestId": contestID,
				"userName":  result[models.ResultUserNameField],
			},
		})
	}
	return res, nil
}

func (s *contestResultService) DeleteContestResults(ctx context.Context, contestID int64) (*models.DeleteResult, error) {
	res, err := s.resultRepo.DeleteByContest(ctx, contestID)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete contest results")
	}
	if res.DeletedCount > 0 {
		s.events.BroadcastToRoom(realtime.ContestRoom(contestID), realtime.Event{
			Type:    realtime.EventContestResultsPurged,
			Payload: map[string]interface{}{"contestId": contestID, "deletedCount": res.DeletedCount},
		})
	}
	return res, nil
}

func (s *contestResultService) DeleteUserResults(ctx context.Context, handle string) (*models.DeleteResult, error) {
	res, err := s.resultRepo.DeleteByUserName(ctx, handle)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete user results")
	}
	if res.DeletedCount > 0 {
		s.events.BroadcastToRoom(realtime.LeaderboardRoom, realtime.Event{
			Type:    realtime.EventContestResultsPurged,
			Payload: map[string]interface{}{"userName": handle, "deletedCount": res.DeletedCount},
		})
	}
	return res, nil
}
