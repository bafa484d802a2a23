package event

import "time"

// Event holds the metadata extracted for a single race-results page.
type Event struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	DateText string    `json:"date"`
	Date     time.Time `json:"-"`
	Class    string    `json:"class"`
	Venue    string    `json:"venue"`
	Year     int       `json:"year,omitempty"`
}

// New builds an Event for a result-page URL, inferring class, venue, and
// season year from the URL itself. Title and date text come from page
// content and are filled in by the caller.
func New(url, title, dateText string) *Event {
	return &Event{
		URL:      url,
		Title:    title,
		DateText: dateText,
		Date:     ParseDate(dateText),
		Class:    ClassFromURL(url),
		Venue:    VenueFromURL(url),
		Year:     SeasonFromURL(url),
	}
}

// IsPast reports whether the race date has passed. Events whose date text
// could not be parsed are never considered past.
func (e *Event) IsPast() bool {
	if e.Date.IsZero() {
		return false
	}
	return e.Date.Before(time.Now())
}
