package utils

import "errors"

// ErrNoDomain is returned when no host can be found in a URL-like string.
var ErrNoDomain = errors.New("no domain in input")
