// Package logger builds configured slog loggers for the authorization core
// and the services embedding it.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithAttr(slog.String("service", "authcore")),
//	)
//
//	svc := auth.New(accounts, sessions, auth.WithLogger(log))
package logger
