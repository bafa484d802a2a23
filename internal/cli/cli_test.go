package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const listingPage = `<html><body>
<a href="/2025-05-10/450sx/rice-eccles-stadium">Salt Lake City 450SX</a>
<a href="/riders">Riders</a>
</body></html>`

const resultPage = `<html><body>
<h1>450SX Class Race Results</h1>
<h2>May 10, 2025</h2>
<table>
<thead><tr><th>Pos.</th><th>Rider</th></tr></thead>
<tbody>
<tr><td>1</td><td>Cooper Webb</td></tr>
<tr><td>2</td><td>Chase Sexton</td></tr>
</tbody>
</table>
</body></html>`

func TestRunCrawlEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/2025/sx/races", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage)
	})
	mux.HandleFunc("/2025-05-10/450sx/rice-eccles-stadium", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, resultPage)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgContent := fmt.Sprintf(`base_url: %s
series:
  sx: Supercross
first_year: 2025
last_year: 2025
delay: 0s
cache_dir: ""
`, srv.URL)
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	outDir := filepath.Join(dir, "export")
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"--out-dir", outDir,
		"--format", "json",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var summary Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v\n%s", err, out.String())
	}
	if summary.LinksDiscovered != 1 || summary.PagesParsed != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.RowsExported != 2 || summary.EventsExported != 1 {
		t.Errorf("unexpected export counts: %+v", summary)
	}

	f, err := os.Open(filepath.Join(outDir, "racerx_results.csv"))
	if err != nil {
		t.Fatalf("results file not written: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading results CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "event_url" || records[1][7] != "Cooper Webb" {
		t.Errorf("unexpected CSV contents: %v", records[:2])
	}

	if _, err := os.Stat(filepath.Join(outDir, "racerx_events.csv")); err != nil {
		t.Errorf("events file not written: %v", err)
	}
}

func TestRunCrawlLimit(t *testing.T) {
	const limitListing = `<html><body>
<a href="/2025-01-04/450sx/angel-stadium">Anaheim 1 450SX</a>
<a href="/2025-05-10/450sx/rice-eccles-stadium">Salt Lake City 450SX</a>
</body></html>`
	const anaheimPage = `<html><body>
<h1>450SX Class Race Results</h1>
<h2>January 4, 2025</h2>
<table>
<tr><th>Pos.</th><th>Rider</th></tr>
<tr><td>1</td><td>Jett Lawrence</td></tr>
</table>
</body></html>`

	mux := http.NewServeMux()
	mux.HandleFunc("/2025/sx/races", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, limitListing)
	})
	mux.HandleFunc("/2025-01-04/450sx/angel-stadium", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, anaheimPage)
	})
	mux.HandleFunc("/2025-05-10/450sx/rice-eccles-stadium", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, resultPage)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfgContent := fmt.Sprintf(`base_url: %s
series:
  sx: Supercross
first_year: 2025
last_year: 2025
delay: 0s
cache_dir: ""
`, srv.URL)
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"--out-dir", filepath.Join(dir, "export"),
		"--format", "json",
		"--limit", "1",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var summary Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("summary is not JSON: %v\n%s", err, out.String())
	}

	// Both links are discovered but only the first sorted link is parsed
	if summary.LinksDiscovered != 2 {
		t.Errorf("expected 2 links discovered, got %d", summary.LinksDiscovered)
	}
	if summary.PagesParsed != 1 || summary.EventsExported != 1 {
		t.Errorf("limit 1 should parse a single page: %+v", summary)
	}
	if summary.RowsExported != 1 {
		t.Errorf("expected the 1-row Anaheim table, got %d rows", summary.RowsExported)
	}
}

func TestRunCrawlRejectsBadFormat(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "--years", "2025"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for invalid format")
	}
}
