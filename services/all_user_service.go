package services

import (
	"context"
	"log/slog"

	"github.com/xpsc-club/xpsc-server/cache"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/repositories"
)

type AllUserService interface {
	ListUsers(ctx context.Context) ([]models.Document, error)
	// GetUserByEmail returns nil when the email is unknown.
	GetUserByEmail(ctx context.Context, email string) (models.Document, error)
	// IsAdmin reports whether a user with the email exists and carries the admin role.
	IsAdmin(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user models.Document) (*models.InsertResult, error)
	UpdateUser(ctx context.Context, id string, fields models.AllUserFields) (*models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error)
}

type allUserService struct {
	userRepo  repositories.AllUserRepository
	roleCache cache.RoleCache
	logger    *slog.Logger
}

func NewAllUserService(userRepo repositories.AllUserRepository, roleCache cache.RoleCache, logger *slog.Logger) AllUserService {
	return &allUserService{
		userRepo:  userRepo,
		roleCache: roleCache,
		logger:    logger,
	}
}

func (s *allUserService) ListUsers(ctx context.Context) ([]models.Document, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list users")
	}
	return users, nil
}

func (s *allUserService) GetUserByEmail(ctx context.Context, email string) (models.Document, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, translateRepoError(err, "failed to get user by email")
	}
	return user, nil
}

func (s *allUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	// The generation is taken before the store read so that a flush racing
	// with this lookup discards what we cache below.
	entry, err := s.roleCache.Lookup(ctx, email)
	cacheable := err == nil
	if err != nil {
		s.logger.WarnContext(ctx, "role cache lookup failed", slog.Any("error", err))
	} else if entry.Found {
		return entry.IsAdmin, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, translateRepoError(err, "failed to look up user role")
	}
	isAdmin := user != nil && user["role"] == string(models.RoleAdmin)

	if cacheable {
		if err := s.roleCache.Store(ctx, email, entry.Generation, isAdmin); err != nil {
			s.logger.WarnContext(ctx, "role cache store failed", slog.Any("error", err))
		}
	}
	return isAdmin, nil
}

func (s *allUserService) CreateUser(ctx context.Context, user models.Document) (*models.InsertResult, error) {
	res, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, translateRepoError(err, "failed to create user")
	}
	s.flushRoles(ctx)
	return res, nil
}

func (s *allUserService) UpdateUser(ctx context.Context, id string, fields models.AllUserFields) (*models.UpdateResult, error) {
	res, err := s.userRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateRepoError(err, "failed to update user")
	}
	s.flushRoles(ctx)
	return res, nil
}

func (s *allUserService) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete user")
	}
	s.flushRoles(ctx)
	return res, nil
}

// flushRoles drops cached role flags after any write to the users collection.
func (s *allUserService) flushRoles(ctx context.Context) {
	if err := s.roleCache.Flush(ctx); err != nil {
		s.logger.WarnContext(ctx, "role cache flush failed", slog.Any("error", err))
	}
}
