package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type AuthenticateInput struct {
	Email    string
	Password string
}

type AuthenticateOutput struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthenticateUserUseCase checks credentials and issues an access token.
// Unknown email and wrong password fail with the same error.
type AuthenticateUserUseCase struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger logrus.FieldLogger
}

func NewAuthenticateUserUseCase(repo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger logrus.FieldLogger) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{Repo: repo, Hasher: hasher, Tokens: tokens, Logger: logger}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, in AuthenticateInput) (*AuthenticateOutput, error) {
	u, err := uc.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !uc.Hasher.Compare(u.Password, in.Password) {
		uc.Logger.WithField("email", in.Email).Warn("authentication failed")
		return nil, ErrInvalidCredentials
	}

	token, exp, err := uc.Tokens.GenerateAccessToken(u.ID)
	if err != nil {
		uc.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, err
	}
	return &AuthenticateOutput{User: u, AccessToken: token, ExpiresAt: exp}, nil
}
