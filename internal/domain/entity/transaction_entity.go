package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
)

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// ParseTransactionType accepts CREDIT or DEBIT in any letter case.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TransactionCredit, TransactionDebit:
		return t, true
	}
	return "", false
}

func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID        string
	UserID    string
	Amount    float64
	Type      TransactionType
	CreatedAt time.Time
}

type TransactionParams struct {
	ID        string
	UserID    string
	Amount    float64
	Type      TransactionType
	CreatedAt time.Time
}

// Balance is the derived sum of CREDIT minus DEBIT amounts for a user.
type Balance struct {
	Amount float64
}

// NewTransaction validates p and builds a fresh transaction.
func NewTransaction(p TransactionParams) (*Transaction, error) {
	if p.ID != "" || !p.CreatedAt.IsZero() {
		return nil, apperror.Validation("ID and createdAt cannot be provided when creating a transaction")
	}
	if err := validateTransaction(p); err != nil {
		return nil, err
	}
	return &Transaction{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		Amount:    p.Amount,
		Type:      p.Type,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// RestoreTransaction rehydrates a transaction read back from storage.
func RestoreTransaction(p TransactionParams) (*Transaction, error) {
	if p.ID == "" || p.CreatedAt.IsZero() {
		return nil, apperror.Validation("ID and createdAt are required for restoring a transaction")
	}
	if err := validateTransaction(p); err != nil {
		return nil, err
	}
	return &Transaction{
		ID:        p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	}, nil
}

func validateTransaction(p TransactionParams) error {
	if strings.TrimSpace(p.UserID) == "" {
		return apperror.Validation("User ID is required")
	}
	// written as a negation so NaN is rejected too
	if !(p.Amount > 0) {
		return apperror.Validation("Amount must be greater than 0")
	}
	if !p.Type.Valid() {
		return apperror.New(apperror.KindValidation, apperror.CodeInvalidTransactionType, "Invalid transaction type")
	}
	return nil
}
