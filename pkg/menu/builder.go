package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/bludee/authcore/pkg/session"
)

// Builder derives menus for session tokens.
type Builder struct {
	sessions session.Store
}

// NewBuilder creates a Builder over the given session store.
func NewBuilder(sessions session.Store) *Builder {
	return &Builder{sessions: sessions}
}

// ForToken derives the menu for the session behind the token. Missing and
// expired sessions yield an empty tree without error; the lookup carries the
// store's lazy eviction of stale records.
func (b *Builder) ForToken(ctx context.Context, token string) ([]Section, error) {
	sess, err := b.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			return []Section{}, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return ForRole(sess.Role), nil
}
