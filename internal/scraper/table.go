package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table is a results table lifted out of page markup: one header row plus
// the data rows, all cells whitespace-collapsed.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ExtractFirstTable returns the first <table> in the document as a Table,
// or nil when the document has no usable table. Header cells come from
// thead when present, otherwise from the first row. Data rows are padded
// or truncated to the header width so downstream CSV output stays
// rectangular (result tables vary: SX pages carry a Machine column, MX and
// SMX pages carry Moto 1/Moto 2 columns).
func ExtractFirstTable(doc *goquery.Document) *Table {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	allRows := table.Find("tr")
	if allRows.Length() == 0 {
		return nil
	}

	headerRow := table.Find("thead tr").First()
	headerInBody := false
	if headerRow.Length() == 0 {
		headerRow = allRows.First()
		headerInBody = true
	}

	headers := cellTexts(headerRow)
	if len(headers) == 0 {
		return nil
	}

	t := &Table{Headers: headers}
	allRows.Each(func(i int, row *goquery.Selection) {
		if headerInBody && i == 0 {
			return
		}
		if !headerInBody && row.ParentsFiltered("thead").Length() > 0 {
			return
		}

		cells := cellTexts(row)
		if len(cells) == 0 {
			return
		}
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		t.Rows = append(t.Rows, cells[:len(headers)])
	})

	return t
}

// cellTexts returns the trimmed, whitespace-collapsed text of every th/td
// cell in a row.
func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(i int, cell *goquery.Selection) {
		cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
	})
	return cells
}
