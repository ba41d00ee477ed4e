package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Save(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	args := m.Called(ctx, tx)
	switch r := args.Get(0).(type) {
	case *entity.Transaction:
		return r, args.Error(1)
	case func(*entity.Transaction) *entity.Transaction:
		return r(tx), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TransactionRepository) FindByUserID(ctx context.Context, userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	var txs []*entity.Transaction
	if v := args.Get(0); v != nil {
		txs = v.([]*entity.Transaction)
	}
	return txs, args.Error(1)
}

func (m *TransactionRepository) GetBalance(ctx context.Context, userID string) (entity.Balance, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.Balance), args.Error(1)
}

// EchoTransaction makes Save return the transaction it was called with.
func EchoTransaction(tx *entity.Transaction) *entity.Transaction { return tx }
