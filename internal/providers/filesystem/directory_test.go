package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/sharedfs/internal/infrastructure/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	root := buildTree(t)

	listing, err := List(root, root)
	require.NoError(t, err)

	assert.Equal(t, DirectoryListing{
		"a.txt": {IsDirectory: false},
		"sub":   {IsDirectory: true},
	}, listing)
}

func TestListSubdirectory(t *testing.T) {
	root := buildTree(t)

	listing, err := List(filepath.Join(root, "sub"), root)
	require.NoError(t, err)

	assert.Equal(t, DirectoryListing{
		"sub/b.bin": {IsDirectory: false},
		"sub/deep":  {IsDirectory: true},
	}, listing)
}

func TestListErrors(t *testing.T) {
	root := buildTree(t)

	_, err := List(filepath.Join(root, "missing"), root)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = List(filepath.Join(root, "a.txt"), root)
	assert.Error(t, err)
}

func TestScannerListMetrics(t *testing.T) {
	root := buildTree(t)
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	s := &Scanner{Metrics: metrics}

	_, err := s.List(root, root)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ScansTotal.WithLabelValues("list", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EntriesTotal.WithLabelValues(monitoring.KindDirectory)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EntriesTotal.WithLabelValues(monitoring.KindFile)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EntriesTotal.WithLabelValues(monitoring.KindSymlink)))
}
