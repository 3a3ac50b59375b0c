// Package logger provides a structured logging facility based on Zap.
//
// It builds a configured logger instance that supports different
// environments (development vs production).
//
// # Run Correlation
//
// Diff runs attach a generated run_id field to their logger so that all
// log entries from one invocation can be correlated, the same way a
// request-scoped service tags entries with a request ID.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Comparison finished")
package logger
