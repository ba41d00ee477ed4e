package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

// UpdateUserInput fields left empty are not changed.
type UpdateUserInput struct {
	ID        string
	FirstName string
	LastName  string
}

type UpdateUserUseCase struct {
	Repo    repository.UserRepository
	Indexer UserIndexer
	Logger  logrus.FieldLogger
}

func NewUpdateUserUseCase(repo repository.UserRepository, indexer UserIndexer, logger logrus.FieldLogger) *UpdateUserUseCase {
	return &UpdateUserUseCase{Repo: repo, Indexer: indexer, Logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, in UpdateUserInput) (*entity.User, error) {
	u, err := uc.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}

	updated, err := uc.Repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if uc.Indexer != nil {
		if err := uc.Indexer.Index(ctx, updated); err != nil {
			uc.Logger.WithError(err).WithField("user_id", updated.ID).Warn("reindex user failed")
		}
	}
	return updated, nil
}
