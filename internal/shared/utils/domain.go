package utils

import (
	"regexp"

	"golang.org/x/net/publicsuffix"
)

// domainPattern strips an optional scheme, user info and "www." prefix and
// captures the host up to the first ':', '/', '?' or newline. Each line of a
// multi-line input is a candidate.
var domainPattern = regexp.MustCompile(`(?im)^(?:https?://)?(?:[^@\n]+@)?(?:www\.)?([^:/\n?]+)`)

// ExtractDomain returns the first pattern match in url verbatim, including
// whatever scheme, user info or "www." it consumed. The second result is
// false when nothing matches. This is a heuristic, not a URL parser.
func ExtractDomain(url string) (string, bool) {
	loc := domainPattern.FindStringIndex(url)
	if loc == nil {
		return "", false
	}
	return url[loc[0]:loc[1]], true
}

// ExtractHost is ExtractDomain with the prefixes removed.
func ExtractHost(url string) (string, bool) {
	m := domainPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RegistrableDomain returns the eTLD+1 of the host in url,
// e.g. "remix.ethereum.org" -> "ethereum.org".
func RegistrableDomain(url string) (string, error) {
	host, ok := ExtractHost(url)
	if !ok {
		return "", ErrNoDomain
	}
	return publicsuffix.EffectiveTLDPlusOne(host)
}
