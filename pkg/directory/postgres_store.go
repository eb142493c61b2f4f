package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on top of a pgx connection pool, backing
// the directory with the accounts table (see migrations/).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed directory store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindAccount looks an account up by username.
func (p *PostgresStore) FindAccount(ctx context.Context, username string) (*Account, error) {
	const query = `
		SELECT username, password_hash, name, role, organization, email, active, created_at, last_login
		FROM accounts
		WHERE username = $1`

	var account Account
	err := p.pool.QueryRow(ctx, query, username).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.Name,
		&account.Role,
		&account.Organization,
		&account.Email,
		&account.Active,
		&account.CreatedAt,
		&account.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}

// RecordLogin stamps the account's last successful login.
func (p *PostgresStore) RecordLogin(ctx context.Context, username string, at time.Time) error {
	const query = `UPDATE accounts SET last_login = $2 WHERE username = $1`

	tag, err := p.pool.Exec(ctx, query, username, at)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}
