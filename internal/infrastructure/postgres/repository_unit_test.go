package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)

	assert.NotNil(t, repo)
	assert.Nil(t, repo.pool)
}

func TestNewTransactionRepository(t *testing.T) {
	repo := NewTransactionRepository(nil)

	assert.NotNil(t, repo)
	assert.Nil(t, repo.pool)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestNewPool_InvalidDSN(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", PoolSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse postgres dsn")
}
