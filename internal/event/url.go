package event

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Dated event pages carry an ISO date as a path segment,
	// e.g. /2025-05-10/450sx/rice-eccles-stadium
	datedSegment = regexp.MustCompile(`/\d{4}-\d{2}-\d{2}/`)

	classSegment  = regexp.MustCompile(`/\d{4}-\d{2}-\d{2}/([^/]+)/`)
	venueSegment  = regexp.MustCompile(`/\d{4}-\d{2}-\d{2}/[^/]+/([^/?#]+)/?$`)
	seasonSegment = regexp.MustCompile(`^https?://[^/]+/(\d{4})/`)
)

// IsDatedEventURL reports whether a URL points at a dated event page.
func IsDatedEventURL(url string) bool {
	return datedSegment.MatchString(url)
}

// ClassFromURL returns the lowercased class segment that follows the date
// in a result-page URL (450sx, 250, 250smx, smx-next), or "" when the URL
// carries no class segment.
func ClassFromURL(url string) string {
	m := classSegment.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// VenueFromURL turns the final path segment of a result-page URL into a
// display name: hyphens become spaces and each word is capitalized
// ("rice-eccles-stadium" -> "Rice Eccles Stadium").
func VenueFromURL(url string) string {
	m := venueSegment.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return titleCase(strings.ReplaceAll(m[1], "-", " "))
}

// SeasonFromURL returns the season year segment that immediately follows
// the host (e.g. 2025 in https://vault.racerxonline.com/2025/sx/races),
// or 0 when the URL starts with a dated path instead.
func SeasonFromURL(url string) int {
	m := seasonSegment.FindStringSubmatch(url)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return year
}

// titleCase capitalizes every space-separated word, lowercasing the rest
// of each word so shouting slugs still render as display names.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
