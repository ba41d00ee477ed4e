package application

import (
	"context"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type GetUserByIDUseCase struct {
	Repo repository.UserRepository
}

func NewGetUserByIDUseCase(repo repository.UserRepository) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{Repo: repo}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type GetAllUsersUseCase struct {
	Repo repository.UserRepository
}

func NewGetAllUsersUseCase(repo repository.UserRepository) *GetAllUsersUseCase {
	return &GetAllUsersUseCase{Repo: repo}
}

func (uc *GetAllUsersUseCase) Execute(ctx context.Context) ([]*entity.User, error) {
	return uc.Repo.FindAll(ctx)
}
