// Package config provides 12-factor configuration for the sharedfs CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags override environment variables. The filesystem core never reads
// configuration; the shared folder is always passed to it explicitly.
//
// Configuration Sections:
//   - Share: shared folder root
//   - Output: listing encoding
//   - Metrics: prometheus textfile export
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	root := cfg.Share.Root
//
// Environment Variables:
//   - SHAREDFS_ROOT, SHAREDFS_FORMAT, SHAREDFS_METRICS_FILE
//   - LOG_LEVEL, LOG_DEV
package config
