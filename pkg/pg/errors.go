package pg

import "errors"

var (
	// ErrFailedToParseConfig indicates an invalid connection string.
	ErrFailedToParseConfig = errors.New("pg.failed_to_parse_config")

	// ErrNotReady indicates the database did not accept a connection
	// within the configured retry budget.
	ErrNotReady = errors.New("pg.not_ready")

	// ErrHealthcheckFailed indicates the pooled connection stopped responding.
	ErrHealthcheckFailed = errors.New("pg.healthcheck_failed")

	// ErrMigrationsFailed indicates schema migrations could not be applied.
	ErrMigrationsFailed = errors.New("pg.migrations_failed")
)
