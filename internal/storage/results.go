package storage

import (
	"github.com/pmartens/mxvault/internal/event"
	"github.com/pmartens/mxvault/internal/scraper"
)

// MetaColumns are prefixed to every result row, in this order.
var MetaColumns = []string{"event_url", "title", "date", "class", "venue", "year"}

// colKey identifies an output column. Tables sometimes repeat a header
// name (or leave several header cells blank), so a column is keyed by the
// name plus which occurrence of that name it is within its source table.
// The Nth "Points" column of any table always lands in the same output
// column, and repeated names stay separate instead of collapsing.
type colKey struct {
	name       string
	occurrence int
}

type bufferedRow struct {
	meta  []string
	cells map[int]string // output column index -> value
}

// ResultsBuffer accumulates normalized result rows across pages. Table
// columns are tracked as the union of every appended table's headers in
// first-seen order, so the final CSV aligns rows from pages whose tables
// differ in shape.
type ResultsBuffer struct {
	tableCols []string
	colIndex  map[colKey]int
	rows      []bufferedRow
}

// NewResultsBuffer creates an empty buffer.
func NewResultsBuffer() *ResultsBuffer {
	return &ResultsBuffer{colIndex: make(map[colKey]int)}
}

// Append adds every row of a page's table, prefixed with the event's
// metadata cells. Returns the number of rows added.
func (b *ResultsBuffer) Append(evt *event.Event, t *scraper.Table) int {
	// Map each source-table column to its output column
	cols := make([]int, len(t.Headers))
	occurrences := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		key := colKey{name: h, occurrence: occurrences[h]}
		occurrences[h]++

		idx, known := b.colIndex[key]
		if !known {
			idx = len(b.tableCols)
			b.colIndex[key] = idx
			b.tableCols = append(b.tableCols, h)
		}
		cols[i] = idx
	}

	meta := metaCells(evt)
	for _, row := range t.Rows {
		cells := make(map[int]string, len(row))
		for i, v := range row {
			cells[cols[i]] = v
		}
		b.rows = append(b.rows, bufferedRow{meta: meta, cells: cells})
	}

	return len(t.Rows)
}

// Len returns the number of buffered rows.
func (b *ResultsBuffer) Len() int {
	return len(b.rows)
}

// Header returns the full CSV header: metadata columns followed by the
// union of table columns. Duplicate table header names are kept as-is.
func (b *ResultsBuffer) Header() []string {
	header := make([]string, 0, len(MetaColumns)+len(b.tableCols))
	header = append(header, MetaColumns...)
	header = append(header, b.tableCols...)
	return header
}

// Records renders every buffered row against the full header; cells for
// columns a row's source table lacked stay empty.
func (b *ResultsBuffer) Records() [][]string {
	records := make([][]string, 0, len(b.rows))
	for _, row := range b.rows {
		rec := make([]string, 0, len(MetaColumns)+len(b.tableCols))
		rec = append(rec, row.meta...)
		for i := range b.tableCols {
			rec = append(rec, row.cells[i])
		}
		records = append(records, rec)
	}
	return records
}
