// Package utils holds small string helpers shared by the CLI and callers of
// the filesystem core.
//
// Domain extraction is a best-effort heuristic used for origin checks. It
// never rejects input; it only fails to match.
package utils
