package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pmartens/mxvault/internal/event"
)

const (
	ResultsFile = "racerx_results.csv"
	EventsFile  = "racerx_events.csv"
)

// Storage writes crawl output into an export directory.
type Storage struct {
	outDir string
}

// New creates a Storage rooted at outDir, creating the directory if needed.
func New(outDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	return &Storage{outDir: outDir}, nil
}

// ResultsPath is where the concatenated result rows land.
func (s *Storage) ResultsPath() string {
	return filepath.Join(s.outDir, ResultsFile)
}

// EventsPath is where the per-event metadata rows land.
func (s *Storage) EventsPath() string {
	return filepath.Join(s.outDir, EventsFile)
}

// WriteResults writes the accumulated result rows. Nothing is written when
// the buffer is empty; the returned path is "" in that case.
func (s *Storage) WriteResults(buf *ResultsBuffer) (string, error) {
	if buf.Len() == 0 {
		return "", nil
	}

	path := s.ResultsPath()
	if err := writeCSV(path, buf.Header(), buf.Records()); err != nil {
		return "", err
	}
	return path, nil
}

// WriteEvents writes one metadata row per parsed event. Nothing is written
// for an empty slice; the returned path is "" in that case.
func (s *Storage) WriteEvents(events []*event.Event) (string, error) {
	if len(events) == 0 {
		return "", nil
	}

	records := make([][]string, 0, len(events))
	for _, evt := range events {
		records = append(records, []string{evt.URL, evt.Title, evt.DateText, evt.Class, evt.Venue})
	}

	path := s.EventsPath()
	if err := writeCSV(path, []string{"url", "title", "date", "class", "venue"}, records); err != nil {
		return "", err
	}
	return path, nil
}

func writeCSV(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// metaCells renders the metadata columns for one event. Year 0 means the
// URL carried no season segment and becomes an empty cell.
func metaCells(evt *event.Event) []string {
	year := ""
	if evt.Year != 0 {
		year = strconv.Itoa(evt.Year)
	}
	return []string{evt.URL, evt.Title, evt.DateText, evt.Class, evt.Venue, year}
}
