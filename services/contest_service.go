package services

import (
	"context"

	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/repositories"
)

type ContestService interface {
	ListContests(ctx context.Context) ([]models.Document, error)
	GetContest(ctx context.Context, id string) (models.Document, error)
	GetContestByNumber(ctx context.Context, contestID int64) (models.Document, error)
	CreateContest(ctx context.Context, contest models.Document) (*models.InsertResult, error)
	UpdateContest(ctx context.Context, id string, fields models.ContestFields) (*models.UpdateResult, error)
	DeleteContest(ctx context.Context, id string) (*models.DeleteResult, error)
}

type contestService struct {
	contestRepo repositories.ContestRepository
}

func NewContestService(contestRepo repositories.ContestRepository) ContestService {
	return &contestService{contestRepo: contestRepo}
}

func (s *contestService) ListContests(ctx context.Context) ([]models.Document, error) {
	contests, err := s.contestRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list contests")
	}
	return contests, nil
}

func (s *contestService) GetContest(ctx context.Context, id string) (models.Document, error) {
	contest, err := s.contestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get contest")
	}
	return contest, nil
}

func (s *contestService) GetContestByNumber(ctx context.Context, contestID int64) (models.Document, error) {
	contest, err := s.contestRepo.GetByContestID(ctx, contestID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get contest by contestId")
	}
	return contest, nil
}

func (s *contestService) CreateContest(ctx context.Context, contest models.Document) (*models.InsertResult, error) {
	res, err := s.contestRepo.Create(ctx, contest)
	if err != nil {
		return nil, translateRepoError(err, "failed to create contest")
	}
	return res, nil
}

func (s *contestService) UpdateContest(ctx context.Context, id string, fields models.ContestFields) (*models.UpdateResult, error) {
	res, err := s.contestRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateRepoError(err, "failed to update contest")
	}
	return res, nil
}

func (s *contestService) DeleteContest(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.contestRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete contest")
	}
	return res, nil
}
