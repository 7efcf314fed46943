package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entry kinds counted by CountEntry.
const (
	KindText      = "text"
	KindBinary    = "binary"
	KindDirectory = "directory"
	KindFile      = "file"
	KindSymlink   = "symlink"
)

// Metrics holds scan metrics. A nil *Metrics records nothing.
type Metrics struct {
	ScansTotal   *prometheus.CounterVec
	ScanDuration *prometheus.HistogramVec
	EntriesTotal *prometheus.CounterVec
}

// NewMetrics registers the scan metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ScansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sharedfs_scans_total",
				Help: "Total number of walk and list operations",
			},
			[]string{"operation", "status"},
		),
		ScanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sharedfs_scan_duration_seconds",
				Help:    "Walk and list duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		EntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sharedfs_entries_total",
				Help: "Filesystem entries seen, by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveScan records one finished operation.
func (m *Metrics) ObserveScan(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ScansTotal.WithLabelValues(operation, status).Inc()
	m.ScanDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// CountEntry records one entry of the given kind.
func (m *Metrics) CountEntry(kind string) {
	if m == nil {
		return
	}
	m.EntriesTotal.WithLabelValues(kind).Inc()
}

// WriteTextfile dumps everything g gathers in the node_exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
