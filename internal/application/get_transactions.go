package application

import (
	"context"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

// GetTransactionsUseCase hands the filter to the repository untouched and
// keeps the repository's ordering.
type GetTransactionsUseCase struct {
	Repo repository.TransactionRepository
}

func NewGetTransactionsUseCase(repo repository.TransactionRepository) *GetTransactionsUseCase {
	return &GetTransactionsUseCase{Repo: repo}
}

func (uc *GetTransactionsUseCase) Execute(ctx context.Context, userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	return uc.Repo.FindByUserID(ctx, userID, filter)
}
