package scraper

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/gocolly/colly/v2"

	"github.com/pmartens/mxvault/internal/config"
	"github.com/pmartens/mxvault/internal/event"
	"github.com/pmartens/mxvault/internal/logger"
)

// Scraper runs the two-stage crawl over the vault archive.
type Scraper struct {
	cfg   *config.Config
	Stats *logger.Counters
}

// New creates a Scraper for the given crawl scope.
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		cfg:   cfg,
		Stats: logger.NewCounters(),
	}
}

// newCollector builds a collector with the configured user agent, timeout,
// response cache, and per-domain politeness delay.
func (s *Scraper) newCollector() *colly.Collector {
	opts := []colly.CollectorOption{
		colly.UserAgent(s.cfg.UserAgent),
	}
	if s.cfg.CacheDir != "" {
		opts = append(opts, colly.CacheDir(s.cfg.CacheDir))
	}

	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(s.cfg.Timeout.Std())

	if err := c.Limit(&colly.LimitRule{
		DomainGlob: "*",
		Delay:      s.cfg.Delay.Std(),
	}); err != nil {
		logger.Warn("failed to set crawl delay", logger.Fields{"delay": s.cfg.Delay.Std().String()})
	}

	return c
}

// listingURL is the season listing page for a (year, series) pair.
func (s *Scraper) listingURL(year int, slug string) string {
	return fmt.Sprintf("%s/%d/%s/races", strings.TrimRight(s.cfg.BaseURL, "/"), year, slug)
}

// DiscoverLinks visits every configured (year, series) listing page and
// returns the sorted, deduplicated set of dated event-page URLs found on
// them. Listing pages that fail to load (many year/series combinations do
// not exist) are logged and skipped.
func (s *Scraper) DiscoverLinks() []string {
	c := s.newCollector()

	seen := make(map[string]struct{})
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		full := normalizeHref(e.Attr("href"), e.Request.AbsoluteURL)
		if full == "" || !event.IsDatedEventURL(full) {
			return
		}
		if !s.cfg.IncludeSMX && strings.Contains(event.ClassFromURL(full), "smx") {
			return
		}
		seen[full] = struct{}{}
	})

	slugs := make([]string, 0, len(s.cfg.Series))
	for slug := range s.cfg.Series {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		for _, year := range s.cfg.Years() {
			url := s.listingURL(year, slug)
			if err := c.Visit(url); err != nil {
				logger.Warn("skipping listing page", logger.Fields{
					"year":   year,
					"series": slug,
					"error":  err.Error(),
				})
				s.Stats.Incr("listings.skipped")
				continue
			}
			s.Stats.Incr("listings.visited")
			logger.Debug("visited listing page", logger.Fields{"url": url})
		}
	}

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)

	s.Stats.Add("links.discovered", int64(len(links)))
	return links
}

// normalizeHref resolves a raw href the way the archive expects: rooted
// paths are made absolute against the visited page, absolute http(s) links
// pass through, and anything else (fragments, mailto, page-relative paths)
// is dropped.
func normalizeHref(href string, absolute func(string) string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "/"):
		return absolute(href)
	case strings.HasPrefix(href, "http"):
		return href
	default:
		return ""
	}
}

// PageResult is one successfully parsed result page: its event metadata
// and the results table lifted from the markup.
type PageResult struct {
	Event *event.Event
	Table *Table
}

// FetchResultPages visits each link in order and invokes handle for every
// page that yields a results table. Pages that fail to load or carry no
// table are counted and skipped. Links must already be sorted; the handle
// callback therefore sees pages in deterministic order.
func (s *Scraper) FetchResultPages(links []string, handle func(*PageResult)) {
	c := s.newCollector()

	total := len(links)
	position := 0

	c.OnResponse(func(r *colly.Response) {
		url := r.Request.URL.String()

		res, err := ParsePage(bytes.NewReader(r.Body), url)
		if err != nil {
			logger.Error("failed to parse result page", logger.Fields{"url": url}, err)
			s.Stats.Incr("pages.failed")
			return
		}
		if res.Table == nil {
			logger.Warn("no results table on page", logger.Fields{"url": url})
			s.Stats.Incr("pages.notable")
			return
		}

		s.Stats.Incr("pages.parsed")
		logger.Info("parsed result page", logger.Fields{
			"page":  position,
			"total": total,
			"url":   url,
			"rows":  len(res.Table.Rows),
		})
		handle(res)
	})

	for i, link := range links {
		position = i + 1
		if err := c.Visit(link); err != nil {
			logger.Error("failed to fetch result page", logger.Fields{"url": link}, err)
			s.Stats.Incr("pages.failed")
		}
	}
}
