package event

import (
	"regexp"
	"time"
)

// Result pages show the race date as "May 10, 2025" somewhere in the
// header block.
var dateTextPattern = regexp.MustCompile(`[A-Za-z]+ \d{1,2}, \d{4}`)

// ExtractDateText returns the first "Month D, YYYY" occurrence in text,
// or "" when none is present.
func ExtractDateText(text string) string {
	return dateTextPattern.FindString(text)
}

// ParseDate attempts to parse extracted date text into a time.Time.
// Returns the zero value if parsing fails.
// Supports "May 10, 2025" and abbreviated "May 10, 25" style months.
func ParseDate(dateText string) time.Time {
	if dateText == "" {
		return time.Time{}
	}

	// Try "May 10, 2025" format
	t, err := time.Parse("January 2, 2006", dateText)
	if err == nil {
		return t
	}

	// Try abbreviated month, "Oct 5, 2025"
	t, err = time.Parse("Jan 2, 2006", dateText)
	if err == nil {
		return t
	}

	// Could not parse, return zero time
	return time.Time{}
}
