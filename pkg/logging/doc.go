// Package logging provides structured logging configuration for debbugs.
//
// This package wraps log/slog so the client library and the CLI share one
// logging setup. It supports configurable log levels and output formats.
//
// # Usage
//
// Create a logger with desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("sending request", "method", "get_status")
//	logger.Error("request failed", "error", err)
//
// # Integration
//
// Components should accept a *slog.Logger via a setter. If no logger is
// provided, use logging.Nop() for a no-op logger.
package logging
