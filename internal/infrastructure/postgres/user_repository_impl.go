package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-wallet/internal/domain/apperror"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/repository"
)

const userColumns = `id::text, first_name, last_name, email, password, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.ID, u.FirstName, u.LastName, u.Email, u.Password, u.CreatedAt, u.UpdatedAt)

	saved, err := scanUser(row)
	if err != nil {
		// two concurrent registrations can both pass the email lookup
		if isUniqueViolation(err) {
			return nil, apperror.Conflict(apperror.CodeEmailExists, "Email already exists")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return saved, nil
}

// FindByID returns nil, nil when no row matches.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id::text = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// FindByEmail returns nil, nil when no row matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update writes the mutable fields and stamps updated_at.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	u.UpdatedAt = time.Now().UTC()

	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, password = $4, updated_at = $5
		WHERE id::text = $6
		RETURNING `+userColumns,
		u.FirstName, u.LastName, u.Email, u.Password, u.UpdatedAt, u.ID)

	updated, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

// Delete reports whether a row was removed.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id::text = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return res.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var p entity.UserParams
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Password, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return entity.RestoreUser(p)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ repository.UserRepository = (*UserRepository)(nil)
