package filesystem

import (
	"github.com/GriffinCanCode/sharedfs/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/sharedfs/internal/logging"
)

// FileListing maps a RelativePath to whether the file's content is binary.
// Keys are unique by construction of the map; order carries no meaning.
type FileListing map[string]bool

// DirEntry classifies one immediate child of a listed directory.
type DirEntry struct {
	IsDirectory bool `json:"isDirectory" yaml:"isDirectory" toml:"isDirectory"`
}

// DirectoryListing maps a RelativePath to its DirEntry.
type DirectoryListing map[string]DirEntry

// Classifier decides whether a regular file holds binary data.
type Classifier interface {
	IsBinary(path string) (bool, error)
}

// Scanner walks and lists directories of a shared folder.
// The zero value is ready to use. Neither listing is synchronized, so a
// Scanner call must not share its accumulator with a concurrent call.
type Scanner struct {
	Classifier Classifier
	Logger     *logging.Logger
	Metrics    *monitoring.Metrics
}

var defaultScanner = &Scanner{}

func (s *Scanner) classifier() Classifier {
	if s.Classifier == nil {
		return MIMEClassifier{}
	}
	return s.Classifier
}

func (s *Scanner) logger() *logging.Logger {
	if s.Logger == nil {
		return logging.NewNop()
	}
	return s.Logger
}
