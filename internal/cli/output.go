package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Summary describes a finished crawl.
type Summary struct {
	StartedAt       time.Time `json:"started_at"`
	Elapsed         string    `json:"elapsed"`
	ListingsVisited int64     `json:"listings_visited"`
	ListingsSkipped int64     `json:"listings_skipped"`
	LinksDiscovered int64     `json:"links_discovered"`
	PagesParsed     int64     `json:"pages_parsed"`
	PagesFailed     int64     `json:"pages_failed"`
	PagesNoTable    int64     `json:"pages_no_table"`
	RowsExported    int       `json:"rows_exported"`
	EventsExported  int       `json:"events_exported"`
	ResultsPath     string    `json:"results_path,omitempty"`
	EventsPath      string    `json:"events_path,omitempty"`
}

// WriteOutput writes the summary in the specified format
func WriteOutput(w io.Writer, summary *Summary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, summary *Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func writeText(w io.Writer, summary *Summary) error {
	fmt.Fprintf(w, "Crawl finished in %s\n", summary.Elapsed)
	fmt.Fprintf(w, "Listing pages: %d visited, %d skipped\n",
		summary.ListingsVisited, summary.ListingsSkipped)
	fmt.Fprintf(w, "Event links discovered: %d\n", summary.LinksDiscovered)
	fmt.Fprintf(w, "Result pages: %d parsed, %d failed, %d without a results table\n",
		summary.PagesParsed, summary.PagesFailed, summary.PagesNoTable)

	if summary.RowsExported == 0 {
		fmt.Fprintln(w, "No result rows extracted.")
		return nil
	}

	fmt.Fprintf(w, "Wrote %d result rows to %s\n", summary.RowsExported, summary.ResultsPath)
	fmt.Fprintf(w, "Wrote %d events to %s\n", summary.EventsExported, summary.EventsPath)
	return nil
}
