package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/GriffinCanCode/sharedfs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sharedfs/internal/shared/paths"
	"go.uber.org/zap"
)

// List lists dir one level deep with the default Scanner.
func List(dir, sharedFolder string) (DirectoryListing, error) {
	return defaultScanner.List(dir, sharedFolder)
}

// List returns the immediate children of dir keyed by their path relative to
// sharedFolder. Symlinks are left out.
func (s *Scanner) List(dir, sharedFolder string) (listing DirectoryListing, err error) {
	start := time.Now()
	defer func() { s.Metrics.ObserveScan("list", time.Since(start), err) }()

	// ReadDir reports the entry type without following links.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	listing = make(DirectoryListing, len(entries))
	for _, entry := range entries {
		if entry.Type()&fs.ModeSymlink != 0 {
			s.Metrics.CountEntry(monitoring.KindSymlink)
			continue
		}

		isDir := entry.IsDir()
		if isDir {
			s.Metrics.CountEntry(monitoring.KindDirectory)
		} else {
			s.Metrics.CountEntry(monitoring.KindFile)
		}

		child := filepath.Join(dir, entry.Name())
		listing[paths.ToRelative(child, sharedFolder)] = DirEntry{IsDirectory: isDir}
	}

	s.logger().Debug("list finished",
		zap.String("dir", dir),
		zap.Int("entries", len(listing)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return listing, nil
}
