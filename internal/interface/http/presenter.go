package handlers

import (
	"time"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
)

// userResponse is the public view of a user. It never carries the password.
type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func presentUser(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func presentUsers(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, presentUser(u))
	}
	return out
}

type transactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func presentTransaction(tx *entity.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		CreatedAt: tx.CreatedAt,
	}
}

func presentTransactions(txs []*entity.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, presentTransaction(tx))
	}
	return out
}

type balanceResponse struct {
	Amount float64 `json:"amount"`
}
