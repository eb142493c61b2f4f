package directory

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using an in-memory table. Safe for
// concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewMemoryStore creates an in-memory directory seeded with the given
// accounts. Records are copied in; later mutation of the arguments does not
// affect the store.
func NewMemoryStore(accounts ...Account) *MemoryStore {
	store := &MemoryStore{
		accounts: make(map[string]*Account, len(accounts)),
	}
	for _, account := range accounts {
		accountCopy := account
		store.accounts[account.Username] = &accountCopy
	}
	return store
}

// FindAccount looks an account up by username.
func (m *MemoryStore) FindAccount(ctx context.Context, username string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, exists := m.accounts[username]
	if !exists {
		return nil, ErrAccountNotFound
	}

	accountCopy := *account
	if account.LastLogin != nil {
		lastLogin := *account.LastLogin
		accountCopy.LastLogin = &lastLogin
	}
	return &accountCopy, nil
}

// RecordLogin stamps the account's last successful login.
func (m *MemoryStore) RecordLogin(ctx context.Context, username string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[username]
	if !exists {
		return ErrAccountNotFound
	}

	account.LastLogin = &at
	return nil
}

// Put inserts or replaces an account. This is the hook for the external
// admin workflow that manages accounts outside the authorization core.
func (m *MemoryStore) Put(ctx context.Context, account Account) error {
	if account.Username == "" {
		return ErrInvalidAccount
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	accountCopy := account
	m.accounts[account.Username] = &accountCopy
	return nil
}
