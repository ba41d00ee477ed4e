package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
	Logger logrus.FieldLogger
}

func NewChangePasswordUseCase(repo repository.UserRepository, hasher PasswordHasher, logger logrus.FieldLogger) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{Repo: repo, Hasher: hasher, Logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, in ChangePasswordInput) (*entity.User, error) {
	u, err := uc.Repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !uc.Hasher.Compare(u.Password, in.CurrentPassword) {
		return nil, ErrWrongPassword
	}
	if err := u.UpdatePassword(in.NewPassword); err != nil {
		return nil, err
	}
	hash, err := uc.Hasher.Hash(in.NewPassword)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	updated, err := uc.Repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	uc.Logger.WithField("user_id", u.ID).Info("password changed")
	return updated, nil
}
