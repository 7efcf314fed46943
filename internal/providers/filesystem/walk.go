package filesystem

import (
	"io/fs"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/GriffinCanCode/sharedfs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sharedfs/internal/shared/paths"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// Walk scans dir recursively with the default Scanner.
func Walk(dir string, acc FileListing, sharedFolder string) (FileListing, error) {
	return defaultScanner.Walk(dir, acc, sharedFolder)
}

// Walk records every regular file below dir in acc, keyed by its path
// relative to sharedFolder, and returns acc. A nil acc is allocated.
//
// Symlinks are skipped without being followed. Directories add no keys of
// their own. The first filesystem error aborts the walk and is returned
// as-is; acc may then hold a partial result.
func (s *Scanner) Walk(dir string, acc FileListing, sharedFolder string) (listing FileListing, err error) {
	start := time.Now()
	defer func() { s.Metrics.ObserveScan("walk", time.Since(start), err) }()

	if acc == nil {
		acc = FileListing{}
	}

	info, err := os.Stat(dir)
	if err != nil {
		return acc, err
	}
	if !info.IsDir() {
		return acc, &fs.PathError{Op: "readdir", Path: dir, Err: syscall.ENOTDIR}
	}

	classifier := s.classifier()
	var mu sync.Mutex

	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}
	err = fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink != 0 {
			s.Metrics.CountEntry(monitoring.KindSymlink)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		binary, err := classifier.IsBinary(path)
		if err != nil {
			return err
		}
		if binary {
			s.Metrics.CountEntry(monitoring.KindBinary)
		} else {
			s.Metrics.CountEntry(monitoring.KindText)
		}

		mu.Lock()
		acc[paths.ToRelative(path, sharedFolder)] = binary
		mu.Unlock()
		return nil
	})
	if err != nil {
		return acc, err
	}

	s.logger().Debug("walk finished",
		zap.String("dir", dir),
		zap.Int("files", len(acc)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return acc, nil
}
