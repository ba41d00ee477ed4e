package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type DeleteUserUseCase struct {
	Repo    repository.UserRepository
	Indexer UserIndexer
	Logger  logrus.FieldLogger
}

func NewDeleteUserUseCase(repo repository.UserRepository, indexer UserIndexer, logger logrus.FieldLogger) *DeleteUserUseCase {
	return &DeleteUserUseCase{Repo: repo, Indexer: indexer, Logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string) error {
	u, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	ok, err := uc.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeleteFailed
	}

	uc.Logger.WithField("user_id", id).Info("user deleted")
	if uc.Indexer != nil {
		if err := uc.Indexer.Remove(ctx, id); err != nil {
			uc.Logger.WithError(err).WithField("user_id", id).Warn("remove user from index failed")
		}
	}
	return nil
}
