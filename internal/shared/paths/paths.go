package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize converts a native path into the forward-slash form.
// On platforms that already use '/' the input is returned unchanged.
func Normalize(path string) string {
	return normalize(path, filepath.Separator)
}

func normalize(path string, sep rune) string {
	if sep != '\\' {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}

// ToAbsolute returns the native absolute path for path.
//
// path may be shared-relative ("sub/a.txt") or already rooted under
// sharedFolder; rooted input is returned as normalized, so the function is
// idempotent.
func ToAbsolute(path, sharedFolder string) string {
	path = Normalize(path)
	if IsWithin(path, sharedFolder) {
		return path
	}
	return resolve(sharedFolder, path)
}

// ToRelative returns the Unix-style path of path relative to sharedFolder.
// Entries outside the shared folder are expressed with ".." segments and the
// shared folder itself maps to "".
func ToRelative(path, sharedFolder string) string {
	rel, err := filepath.Rel(absolute(sharedFolder), absolute(path))
	if err != nil {
		// Different volumes; nothing relative to express.
		return Normalize(path)
	}
	if rel == "." {
		return ""
	}
	return Normalize(rel)
}

// IsWithin reports whether path is sharedFolder or lies below it.
// Matching stops at segment boundaries: "/srv/project2" is not within
// "/srv/project".
func IsWithin(path, sharedFolder string) bool {
	if sharedFolder == "" {
		return false
	}
	for _, root := range []string{sharedFolder, Normalize(sharedFolder)} {
		if path == root {
			return true
		}
		if !strings.HasPrefix(path, root) {
			continue
		}
		if strings.HasSuffix(root, "/") || os.IsPathSeparator(root[len(root)-1]) {
			return true
		}
		if next := path[len(root)]; next == '/' || os.IsPathSeparator(next) {
			return true
		}
	}
	return false
}

// resolve applies path to base the way a shell would: absolute paths replace
// the base, relative ones are joined onto it. The result is always cleaned.
func resolve(base, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return absolute(path)
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
