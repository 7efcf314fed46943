// Package monitoring provides Prometheus metrics for filesystem scans.
//
// Metrics:
//   - sharedfs_scans_total{operation,status}
//   - sharedfs_scan_duration_seconds{operation}
//   - sharedfs_entries_total{kind}
//
// A one-shot CLI has no /metrics endpoint, so results can be written to a
// textfile for the node_exporter textfile collector.
//
// Example Usage:
//
//	reg := prometheus.NewRegistry()
//	metrics := monitoring.NewMetrics(reg)
//	scanner := &filesystem.Scanner{Metrics: metrics}
//	_ = monitoring.WriteTextfile("/var/lib/node_exporter/sharedfs.prom", reg)
package monitoring
