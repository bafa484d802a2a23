package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pmartens/mxvault/internal/event"
)

// ParsePage extracts event metadata and the first results table from a
// result-page document. The returned PageResult always carries an Event;
// Table is nil when the page has no tabular results.
func ParsePage(r io.Reader, url string) (*PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1, h2").First().Text())
	dateText := findDateText(doc)

	return &PageResult{
		Event: event.New(url, title, dateText),
		Table: ExtractFirstTable(doc),
	}, nil
}

// findDateText scans header and body text in document order for the first
// "Month D, YYYY" occurrence. The race date usually sits in an h2/h3 right
// under the page title, but older pages bury it in a paragraph.
func findDateText(doc *goquery.Document) string {
	dateText := ""
	doc.Find("h2, h3, p, div").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if match := event.ExtractDateText(text); match != "" {
			dateText = match
			return false
		}
		return true
	})
	return dateText
}
