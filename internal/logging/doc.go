// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON lines on stderr
//   - Development: colored console output, debug level
//
// The filesystem core never logs the errors it returns; callers decide.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("walk finished", zap.Int("files", len(listing)))
package logging
