package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/bludee/authcore/pkg/roles"
)

// Session is a time-bounded proof of a successful authentication.
//
// Role is a snapshot taken at login time: a later role change on the account
// does not retroactively alter a live session.
type Session struct {
	ID           uuid.UUID  `json:"id"`
	Token        string     `json:"token"`
	Username     string     `json:"username"`
	Role         roles.Role `json:"role"`
	Organization string     `json:"organization"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

// New creates a session for the given identity expiring ttl from now.
func New(token, username string, role roles.Role, organization string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New(),
		Token:        token,
		Username:     username,
		Role:         role,
		Organization: organization,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

// IsExpired reports whether the session's absolute expiry has passed.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Remaining returns how long the session stays valid from now.
// Expired sessions return zero, never a negative duration.
func (s *Session) Remaining() time.Duration {
	if s == nil {
		return 0
	}
	if d := time.Until(s.ExpiresAt); d > 0 {
		return d
	}
	return 0
}
