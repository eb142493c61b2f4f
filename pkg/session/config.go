package session

import "time"

// DefaultTTL is the fixed session lifetime mandated by the platform
// contract: 8 hours from issuance, absolute.
const DefaultTTL = 8 * time.Hour

// Config holds session configuration.
type Config struct {
	// TTL is the absolute session lifetime from issuance.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`

	// CleanupInterval for a background sweep of expired sessions in the
	// in-memory store (0 disables it; lazy eviction still applies).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"0"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		TTL:             DefaultTTL,
		CleanupInterval: 0,
	}
}
