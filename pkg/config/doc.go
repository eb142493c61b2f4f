// Package config loads environment-tagged configuration structs, optionally
// seeded from a .env file.
//
// Usage:
//
//	var cfg session.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure, for configuration the process cannot start
// without.
package config
