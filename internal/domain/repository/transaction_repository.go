package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

// TransactionFilter narrows FindByUserID. A nil Type returns every transaction.
type TransactionFilter struct {
	Type *entity.TransactionType
}

// TransactionRepository defines ledger persistence. GetBalance sums CREDIT
// minus DEBIT amounts for the user.
type TransactionRepository interface {
	Save(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	FindByUserID(ctx context.Context, userID string, filter TransactionFilter) ([]*entity.Transaction, error)
	GetBalance(ctx context.Context, userID string) (entity.Balance, error)
}
