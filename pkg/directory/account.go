package directory

import (
	"context"
	"time"

	"github.com/bludee/authcore/pkg/roles"
)

// Account is one user record in the directory. Username is the unique key.
// Every account references exactly one role from the closed role set.
type Account struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         roles.Role `json:"role"`
	Organization string     `json:"organization"`
	Email        string     `json:"email"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Store defines the storage operations the authorization core requires.
// Production deployments back it with a database; tests and the demo use the
// in-memory implementation.
type Store interface {
	// FindAccount looks an account up by username.
	// Returns ErrAccountNotFound when absent.
	FindAccount(ctx context.Context, username string) (*Account, error)

	// RecordLogin stamps the account's last successful login.
	// Returns ErrAccountNotFound when the account does not exist.
	RecordLogin(ctx context.Context, username string, at time.Time) error
}
