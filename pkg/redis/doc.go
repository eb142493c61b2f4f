// Package redis provides Redis connection management for the Redis backed
// session store: connect with retries and a health check.
package redis
