package filesystem

import (
	"errors"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

// MIMEClassifier sniffs file content with mimetype. Text-family types are
// text. Other types are binary only if the sniffed bytes look binary, so
// prose that happens to start with a format magic stays text.
type MIMEClassifier struct{}

// IsBinary implements Classifier.
// Empty files are text. Non-regular files (FIFO, socket, device) are binary
// and never opened.
func (MIMEClassifier) IsBinary(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() {
		return true, nil
	}
	if info.Size() == 0 {
		return false, nil
	}

	sample, err := readSample(path)
	if err != nil {
		return false, err
	}

	mtype := mimetype.Detect(sample)
	if isText(mtype) {
		return false, nil
	}
	if mtype.Is("application/pdf") {
		return true, nil
	}
	return looksBinary(sample), nil
}

func readSample(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") ||
			m.Is("application/json") ||
			m.Is("application/xml") ||
			m.Is("application/javascript") {
			return true
		}
	}
	return false
}

// looksBinary reports a NUL byte, or more than 10% control bytes outside
// the usual whitespace and escape range.
func looksBinary(sample []byte) bool {
	suspicious := 0
	for _, b := range sample {
		if b == 0 {
			return true
		}
		if b < 7 || (b > 14 && b < 32 && b != 27) {
			suspicious++
		}
	}
	return suspicious*10 > len(sample)
}
