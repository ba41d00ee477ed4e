package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Update persists u and stamps UpdatedAt.
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
