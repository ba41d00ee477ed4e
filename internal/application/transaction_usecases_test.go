package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
	"github.com/oksasatya/go-ddd-wallet/internal/mocks"
	"github.com/oksasatya/go-ddd-wallet/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a valid credit", func(t *testing.T) {
		repo := &mocks.TransactionRepository{}
		repo.On("Save", ctx, mock.AnythingOfType("*entity.Transaction")).Return(mocks.EchoTransaction, nil)

		tx, err := application.NewCreateTransactionUseCase(repo, testutil.MakeNoopLogger()).
			Execute(ctx, application.CreateTransactionInput{UserID: "user-1", Amount: 100, Type: entity.TransactionCredit})
		require.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, 100.0, tx.Amount)
		assert.Equal(t, entity.TransactionCredit, tx.Type)
		repo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("non positive amounts never reach the repository", func(t *testing.T) {
		for _, amount := range []float64{0, -5} {
			repo := &mocks.TransactionRepository{}

			_, err := application.NewCreateTransactionUseCase(repo, testutil.MakeNoopLogger()).
				Execute(ctx, application.CreateTransactionInput{UserID: "user-1", Amount: amount, Type: entity.TransactionDebit})
			require.Error(t, err)
			assert.Equal(t, "Amount must be greater than 0", err.Error())
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		repo := &mocks.TransactionRepository{}

		_, err := application.NewCreateTransactionUseCase(repo, testutil.MakeNoopLogger()).
			Execute(ctx, application.CreateTransactionInput{UserID: "user-1", Amount: 1, Type: "REFUND"})
		require.Error(t, err)
		assert.Equal(t, "Invalid transaction type", err.Error())
	})

	t.Run("save failure propagates", func(t *testing.T) {
		repo := &mocks.TransactionRepository{}
		saveErr := errors.New("insert failed")
		repo.On("Save", ctx, mock.Anything).Return(nil, saveErr)

		_, err := application.NewCreateTransactionUseCase(repo, testutil.MakeNoopLogger()).
			Execute(ctx, application.CreateTransactionInput{UserID: "user-1", Amount: 1, Type: entity.TransactionCredit})
		require.ErrorIs(t, err, saveErr)
	})
}

func TestGetTransactions_PassesFilterVerbatim(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := []*entity.Transaction{
		{ID: "a", UserID: "user-1", Amount: 100, Type: entity.TransactionCredit, CreatedAt: t0},
		{ID: "b", UserID: "user-1", Amount: 40, Type: entity.TransactionDebit, CreatedAt: t0.Add(time.Minute)},
	}
	debit := entity.TransactionDebit

	repo := &mocks.TransactionRepository{}
	repo.On("FindByUserID", ctx, "user-1", repository.TransactionFilter{}).Return(rows, nil)
	repo.On("FindByUserID", ctx, "user-1", repository.TransactionFilter{Type: &debit}).Return(rows[1:], nil)

	uc := application.NewGetTransactionsUseCase(repo)

	all, err := uc.Execute(ctx, "user-1", repository.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)

	debits, err := uc.Execute(ctx, "user-1", repository.TransactionFilter{Type: &debit})
	require.NoError(t, err)
	require.Len(t, debits, 1)
	assert.Equal(t, entity.TransactionDebit, debits[0].Type)
	repo.AssertExpectations(t)
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TransactionRepository{}
	repo.On("GetBalance", ctx, "user-1").Return(entity.Balance{Amount: 5000}, nil)
	repo.On("GetBalance", ctx, "user-2").Return(entity.Balance{}, errors.New("timeout"))

	uc := application.NewGetBalanceUseCase(repo)

	b, err := uc.Execute(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, b.Amount)

	_, err = uc.Execute(ctx, "user-2")
	require.Error(t, err)
}
