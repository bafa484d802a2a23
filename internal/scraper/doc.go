// Package scraper crawls the vault archive and parses race-result pages.
//
// The crawl has two sequential stages. Discovery walks every configured
// (year, series) listing page and harvests hyperlinks whose path contains
// a dated-event segment. Extraction then visits each discovered page and
// pulls out the title, the human-readable race date, and the first results
// table on the page.
//
// Both stages go through colly collectors sharing the same politeness
// delay and on-disk response cache, so re-runs against an unchanged site
// are cheap. Failures on individual listing pages or result pages are
// logged and counted, never fatal.
package scraper
