package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

var (
	_ application.PasswordHasher = (*PasswordHasher)(nil)
	_ application.TokenIssuer    = (*TokenIssuer)(nil)
	_ application.UserIndexer    = (*UserIndexer)(nil)
	_ application.UserNotifier   = (*UserNotifier)(nil)
)

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, plain string) bool {
	args := m.Called(hash, plain)
	return args.Bool(0)
}

type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) GenerateAccessToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type UserIndexer struct {
	mock.Mock
}

func (m *UserIndexer) Index(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserIndexer) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserIndexer) Search(ctx context.Context, query string, size int) ([]application.UserSearchHit, error) {
	args := m.Called(ctx, query, size)
	var hits []application.UserSearchHit
	if v := args.Get(0); v != nil {
		hits = v.([]application.UserSearchHit)
	}
	return hits, args.Error(1)
}

type UserNotifier struct {
	mock.Mock
}

func (m *UserNotifier) UserCreated(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}
