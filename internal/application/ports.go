package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs time-limited access tokens.
type TokenIssuer interface {
	GenerateAccessToken(userID string) (string, time.Time, error)
}

// UserIndexer keeps a searchable copy of user profiles.
type UserIndexer interface {
	Index(ctx context.Context, u *entity.User) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, query string, size int) ([]UserSearchHit, error)
}

// UserNotifier is told about newly registered users.
type UserNotifier interface {
	UserCreated(ctx context.Context, u *entity.User) error
}

// UserSearchHit is a single search result.
type UserSearchHit struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
