package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pmartens/mxvault/internal/config"
	"github.com/pmartens/mxvault/internal/event"
	"github.com/pmartens/mxvault/internal/logger"
	"github.com/pmartens/mxvault/internal/scraper"
	"github.com/pmartens/mxvault/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagYears    string
	flagSeries   []string
	flagOutDir   string
	flagCacheDir string
	flagDelay    time.Duration
	flagFormat   string
	flagLimit    int
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mxvault",
		Short: "Crawl the Racer X vault and export race results to CSV",
		Long: `Crawls season listing pages on vault.racerxonline.com for every
configured year and series, discovers dated event-result pages, extracts
each page's results table along with its date, class, and venue, and
writes two CSV files: every result row with event metadata prefixed, and
one metadata row per event.`,
		RunE: runCrawl,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagYears, "years", "", "Season range to crawl, e.g. 2020-2025 or 2024")
	cmd.Flags().StringSliceVar(&flagSeries, "series", nil, "Series slugs to crawl (default sx,mx)")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Export directory for CSV output")
	cmd.Flags().StringVar(&flagCacheDir, "cache-dir", "", "HTTP response cache directory ('' disables caching)")
	cmd.Flags().DurationVar(&flagDelay, "delay", 0, "Politeness delay between requests")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().IntVar(&flagLimit, "limit", 0, "Parse at most N result pages (0 = all)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// loadConfig builds the effective crawl config: file (or defaults) with
// flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if flagYears != "" {
		first, last, err := parseYearRange(flagYears)
		if err != nil {
			return nil, err
		}
		cfg.FirstYear, cfg.LastYear = first, last
	}

	if len(flagSeries) > 0 {
		series := make(map[string]string, len(flagSeries))
		for _, slug := range flagSeries {
			slug = strings.ToLower(strings.TrimSpace(slug))
			if slug == "" {
				continue
			}
			name, known := cfg.Series[slug]
			if !known {
				name = strings.ToUpper(slug)
			}
			series[slug] = name
		}
		cfg.Series = series
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = flagOutDir
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = flagCacheDir
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = config.Duration(flagDelay)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseYearRange accepts "2024" or "2020-2025".
func parseYearRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)

	if first, last, found := strings.Cut(s, "-"); found {
		from, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year range %q", s)
		}
		to, err := strconv.Atoi(strings.TrimSpace(last))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year range %q", s)
		}
		if from > to {
			return 0, 0, fmt.Errorf("year range %q is inverted", s)
		}
		return from, to, nil
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", s)
	}
	return year, year, nil
}

// runCrawl is the main command logic
func runCrawl(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.OutDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	started := time.Now()
	sc := scraper.New(cfg)

	logger.Info("starting crawl", logger.Fields{
		"first_year": cfg.FirstYear,
		"last_year":  cfg.LastYear,
		"series":     len(cfg.Series),
	})

	links := sc.DiscoverLinks()
	parsing := len(links)
	if flagLimit > 0 && parsing > flagLimit {
		links = links[:flagLimit]
		parsing = flagLimit
	}

	logger.Info("discovery finished", logger.Fields{
		"links":   sc.Stats.Get("links.discovered"),
		"parsing": parsing,
	})

	buf := storage.NewResultsBuffer()
	var events []*event.Event
	sc.FetchResultPages(links, func(res *scraper.PageResult) {
		buf.Append(res.Event, res.Table)
		events = append(events, res.Event)
	})

	resultsPath, err := store.WriteResults(buf)
	if err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	eventsPath, err := store.WriteEvents(events)
	if err != nil {
		return fmt.Errorf("writing events: %w", err)
	}

	summary := &Summary{
		StartedAt:       started.UTC(),
		Elapsed:         time.Since(started).Round(time.Millisecond).String(),
		ListingsVisited: sc.Stats.Get("listings.visited"),
		ListingsSkipped: sc.Stats.Get("listings.skipped"),
		LinksDiscovered: sc.Stats.Get("links.discovered"),
		PagesParsed:     sc.Stats.Get("pages.parsed"),
		PagesFailed:     sc.Stats.Get("pages.failed"),
		PagesNoTable:    sc.Stats.Get("pages.notable"),
		RowsExported:    buf.Len(),
		EventsExported:  len(events),
		ResultsPath:     resultsPath,
		EventsPath:      eventsPath,
	}

	if err := WriteOutput(cmd.OutOrStdout(), summary, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
