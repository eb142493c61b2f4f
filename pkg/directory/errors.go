package directory

import "errors"

var (
	// ErrAccountNotFound indicates no account exists for the username.
	ErrAccountNotFound = errors.New("directory.account_not_found")

	// ErrInvalidAccount indicates a malformed account record.
	ErrInvalidAccount = errors.New("directory.invalid_account")

	// ErrInvalidSeed indicates the seed fixture could not be parsed or
	// references a role outside the closed role set.
	ErrInvalidSeed = errors.New("directory.invalid_seed")
)
