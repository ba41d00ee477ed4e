package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

type CreateTransactionInput struct {
	UserID string
	Amount float64
	Type   entity.TransactionType
}

// CreateTransactionUseCase records a ledger entry. It does not check funds;
// the DEBIT balance check lives in the HTTP controller.
type CreateTransactionUseCase struct {
	Repo   repository.TransactionRepository
	Logger logrus.FieldLogger
}

func NewCreateTransactionUseCase(repo repository.TransactionRepository, logger logrus.FieldLogger) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{Repo: repo, Logger: logger}
}

func (uc *CreateTransactionUseCase) Execute(ctx context.Context, in CreateTransactionInput) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(entity.TransactionParams{
		UserID: in.UserID,
		Amount: in.Amount,
		Type:   in.Type,
	})
	if err != nil {
		return nil, err
	}
	saved, err := uc.Repo.Save(ctx, tx)
	if err != nil {
		return nil, err
	}
	uc.Logger.WithFields(logrus.Fields{
		"transaction_id": saved.ID,
		"user_id":        saved.UserID,
		"type":           saved.Type,
		"amount":         saved.Amount,
	}).Info("transaction recorded")
	return saved, nil
}
