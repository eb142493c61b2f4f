package redis

import "errors"

var (
	// ErrFailedToParseConnString indicates an invalid Redis URL.
	ErrFailedToParseConnString = errors.New("redis.failed_to_parse_conn_string")

	// ErrNotReady indicates Redis did not accept a connection within the
	// configured retry budget.
	ErrNotReady = errors.New("redis.not_ready")

	// ErrHealthcheckFailed indicates the connection stopped responding.
	ErrHealthcheckFailed = errors.New("redis.healthcheck_failed")
)
