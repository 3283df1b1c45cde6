package repository

import (
	"context"

	"github.com/brightroof/solar-leads/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicate when the username or
	// email is already taken.
	Create(ctx context.Context, u *entity.User) error

	// GetByUsername returns ErrNotFound when no user matches exactly.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	GetByID(ctx context.Context, id string) (*entity.User, error)
}
