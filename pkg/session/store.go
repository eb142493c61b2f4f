package session

import "context"

// Store defines the interface for session persistence.
//
// Get must evict an expired record as a side effect of observing it and
// return ErrSessionExpired; it never extends a session's lifetime.
type Store interface {
	// Create stores a new session keyed by its token.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a live session by token.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token. It reports whether a session
	// was actually removed, which makes logout idempotence observable.
	Delete(ctx context.Context, token string) (bool, error)

	// DeleteExpired removes all expired sessions.
	DeleteExpired(ctx context.Context) error
}
