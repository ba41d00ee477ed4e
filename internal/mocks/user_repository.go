// Package mocks holds testify mocks for the repository and collaborator ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	args := m.Called(ctx, u)
	return userResult(args.Get(0), u), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	return userResult(args.Get(0), nil), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	return userResult(args.Get(0), nil), args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	var users []*entity.User
	if v := args.Get(0); v != nil {
		users = v.([]*entity.User)
	}
	return users, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	args := m.Called(ctx, u)
	return userResult(args.Get(0), u), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// EchoUser makes Save or Update return the user they were called with.
func EchoUser(u *entity.User) *entity.User { return u }

func userResult(v any, in *entity.User) *entity.User {
	switch r := v.(type) {
	case nil:
		return nil
	case *entity.User:
		return r
	case func(*entity.User) *entity.User:
		return r(in)
	default:
		panic("mocks: unexpected user return type")
	}
}
