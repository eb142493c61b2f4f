package auth

import "errors"

// Authentication failures, in the order the checks run. The first matching
// condition wins; the distinction is part of the client contract.
var (
	// ErrUserNotFound indicates no account exists for the username.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrAccountDisabled indicates the account exists but is deactivated.
	// It takes precedence over credential verification.
	ErrAccountDisabled = errors.New("auth.account_disabled")

	// ErrInvalidCredentials indicates the password did not match.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")
)

// ErrBrokenRole indicates an account references a role missing from the
// registry. This cannot happen under correct configuration; it is a broken
// invariant, not a user error.
var ErrBrokenRole = errors.New("auth.broken_role_configuration")
