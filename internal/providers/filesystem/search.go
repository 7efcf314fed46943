package filesystem

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns the entries of listing whose RelativePath matches pattern.
// Patterns use doublestar syntax ("**/*.sol", "contracts/*").
func Filter[M ~map[string]V, V any](listing M, pattern string) (M, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}

	out := make(M)
	for rel, v := range listing {
		if doublestar.MatchUnvalidated(pattern, rel) {
			out[rel] = v
		}
	}
	return out, nil
}
