package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session existed but its expiry has
	// passed. Stores evict the record as a side effect of observing this.
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a malformed session record (nil or empty token).
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates the secure random source failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
