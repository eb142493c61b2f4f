// Package pg provides PostgreSQL connection management for the Postgres
// backed directory store: pooled connect with retries, a health check, and
// goose-based schema migrations.
package pg
