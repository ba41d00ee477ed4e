package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

const transactionColumns = `id::text, user_id, amount, type, created_at`

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Save(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (id, user_id, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+transactionColumns,
		tx.ID, tx.UserID, tx.Amount, string(tx.Type), tx.CreatedAt)

	saved, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return saved, nil
}

// FindByUserID lists a user's transactions oldest first. A nil filter type
// returns both kinds.
func (r *TransactionRepository) FindByUserID(ctx context.Context, userID string, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}
	if filter.Type != nil {
		query += ` AND type = $2`
		args = append(args, string(*filter.Type))
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*entity.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// GetBalance sums credits minus debits. A user without transactions has 0.
func (r *TransactionRepository) GetBalance(ctx context.Context, userID string) (entity.Balance, error) {
	var amount float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN type = 'CREDIT' THEN amount ELSE -amount END), 0)::float8
		FROM transactions
		WHERE user_id = $1`, userID).Scan(&amount)
	if err != nil {
		return entity.Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return entity.Balance{Amount: amount}, nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		p   entity.TransactionParams
		typ string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Amount, &typ, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Type = entity.TransactionType(typ)
	return entity.RestoreTransaction(p)
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)
