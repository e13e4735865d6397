package repositories

import (
	"context"

	"github.com/hqasem/small-biz-erp/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user and populates its generated ID.
	SaveUser(ctx context.Context, user *domain.User) error
	// FindUserByID returns apperrors.ErrNotFound when no user exists.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	// FindUserByUsername performs a case-sensitive exact match.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}
