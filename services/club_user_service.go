package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/realtime"
	"github.com/xpsc-club/xpsc-server/repositories"
	"github.com/xpsc-club/xpsc-server/storage"
)

const clubUserImagePrefix = "club-users"

type ClubUserService interface {
	ListMembers(ctx context.Context) ([]models.Document, error)
	Leaderboard(ctx context.Context, page models.Page) ([]models.Document, error)
	GetMember(ctx context.Context, id string) (models.Document, error)
	CountMembers(ctx context.Context) (int64, error)
	CreateMember(ctx context.Context, member models.Document) (*models.InsertResult, error)
	UpdateMember(ctx context.Context, id string, fields models.ClubUserFields) (*models.UpdateResult, error)
	// UploadImage stores the file and points the member's image field at it.
	UploadImage(ctx context.Context, id string, file io.Reader, contentType string) (string, *models.UpdateResult, error)
	DeleteMember(ctx context.Context, id string) (*models.DeleteResult, error)
}

type clubUserService struct {
	memberRepo repositories.ClubUserRepository
	uploader   storage.FileUploader
	events     EventPublisher
	logger     *slog.Logger
}

// NewClubUserService accepts a nil uploader when image storage is not configured.
func NewClubUserService(memberRepo repositories.ClubUserRepository, uploader storage.FileUploader, events EventPublisher, logger *slog.Logger) ClubUserService {
	return &clubUserService{
		memberRepo: memberRepo,
		uploader:   uploader,
		events:     events,
		logger:     logger,
	}
}

func (s *clubUserService) ListMembers(ctx context.Context) ([]models.Document, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list club members")
	}
	return members, nil
}

func (s *clubUserService) Leaderboard(ctx context.Context, page models.Page) ([]models.Document, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.Leaderboard(ctx, page)
	if err != nil {
		return nil, translateRepoError(err, "failed to load leaderboard")
	}
	return members, nil
}

func (s *clubUserService) GetMember(ctx context.Context, id string) (models.Document, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get club member")
	}
	return member, nil
}

func (s *clubUserService) CountMembers(ctx context.Context) (int64, error) {
	n, err := s.memberRepo.Count(ctx)
	if err != nil {
		return 0, translateRepoError(err, "failed to count club members")
	}
	return n, nil
}

func (s *clubUserService) CreateMember(ctx context.Context, member models.Document) (*models.InsertResult, error) {
	res, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		return nil, translateRepoError(err, "failed to create club member")
	}
	s.publish(realtime.EventClubUserCreated, res.InsertedID)
	return res, nil
}

func (s *clubUserService) UpdateMember(ctx context.Context, id string, fields models.ClubUserFields) (*models.UpdateResult, error) {
	res, err := s.memberRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateRepoError(err, "failed to update club member")
	}
	if res.MatchedCount > 0 {
		s.publish(realtime.EventClubUserUpdated, id)
	}
	return res, nil
}

func (s *clubUserService) UploadImage(ctx context.Context, id string, file io.Reader, contentType string) (string, *models.UpdateResult, error) {
	if s.uploader == nil {
		return "", nil, ErrStorageDisabled
	}
	if _, err := repositories.ParseObjectID(id); err != nil {
		return "", nil, translateRepoError(err, "invalid club member id")
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return "", nil, err
	}

	key := storage.ObjectKey(clubUserImagePrefix, id, ext)
	uploaded, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to upload club member image: %w", err)
	}

	res, err := s.memberRepo.SetImage(ctx, id, uploaded.Location)
	if err != nil {
		s.discardUpload(ctx, key)
		return "", nil, translateRepoError(err, "failed to set club member image")
	}
	if res.MatchedCount == 0 {
		s.discardUpload(ctx, key)
	} else {
		s.publish(realtime.EventClubUserUpdated, id)
	}
	return uploaded.Location, res, nil
}

func (s *clubUserService) DeleteMember(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.memberRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete club member")
	}
	if res.DeletedCount > 0 {
		s.publish(realtime.EventClubUserDeleted, id)
	}
	return res, nil
}

// discardUpload removes an object that no member ended up referencing.
func (s *clubUserService) discardUpload(ctx context.Context, key string) {
	if err := s.uploader.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to delete orphaned image", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *clubUserService) publish(eventType string, id interface{}) {
	s.events.BroadcastToRoom(realtime.LeaderboardRoom, realtime.Event{
		Type:    eventType,
		Payload: map[string]interface{}{"id": id},
	})
}
