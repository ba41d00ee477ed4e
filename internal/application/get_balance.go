package application

import (
	"context"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type GetBalanceUseCase struct {
	Repo repository.TransactionRepository
}

func NewGetBalanceUseCase(repo repository.TransactionRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{Repo: repo}
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, userID string) (entity.Balance, error) {
	return uc.Repo.GetBalance(ctx, userID)
}
