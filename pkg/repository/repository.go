package repository

import (
	"context"

	"github.com/intervyou/intervyou/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByUsernameOrEmail resolves a login identifier that may be either a
	// username or an email address. Returns (nil, nil) when no user matches.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type SessionRepo interface {
	CreateSession(ctx context.Context, s *models.InterviewSession) (string, error)
	// ListByUser returns every session of a user, newest first. This is the
	// read the question selector builds its seen-question set from.
	ListByUser(ctx context.Context, userID int64) ([]models.InterviewSession, error)
	ListPageByUser(ctx context.Context, userID int64, limit, offset int) ([]models.InterviewSession, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	// GetSessionByID and DeleteSessionByID are owner-scoped: a session id
	// belonging to a different user behaves as if it did not exist.
	GetSessionByID(ctx context.Context, userID int64, id string) (*models.InterviewSession, error)
	DeleteSessionByID(ctx context.Context, userID int64, id string) error
}
