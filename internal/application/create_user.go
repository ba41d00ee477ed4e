package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// CreateUserUseCase registers a new user. Indexer and Notifier are optional.
type CreateUserUseCase struct {
	Repo     repository.UserRepository
	Hasher   PasswordHasher
	Indexer  UserIndexer
	Notifier UserNotifier
	Logger   logrus.FieldLogger
}

func NewCreateUserUseCase(repo repository.UserRepository, hasher PasswordHasher, indexer UserIndexer, notifier UserNotifier, logger logrus.FieldLogger) *CreateUserUseCase {
	return &CreateUserUseCase{Repo: repo, Hasher: hasher, Indexer: indexer, Notifier: notifier, Logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	existing, err := uc.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	// The factory checks the plaintext; a hash would always pass the length rule.
	u, err := entity.NewUser(entity.UserParams{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		return nil, err
	}

	hash, err := uc.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	saved, err := uc.Repo.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	uc.Logger.WithFields(logrus.Fields{"user_id": saved.ID, "email": saved.Email}).Info("user created")

	if uc.Indexer != nil {
		if err := uc.Indexer.Index(ctx, saved); err != nil {
			uc.Logger.WithError(err).WithField("user_id", saved.ID).Warn("index user failed")
		}
	}
	if uc.Notifier != nil {
		if err := uc.Notifier.UserCreated(ctx, saved); err != nil {
			uc.Logger.WithError(err).WithField("user_id", saved.ID).Warn("welcome notification failed")
		}
	}
	return saved, nil
}
