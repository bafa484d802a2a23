// Package event defines the race-event domain type and the heuristics that
// recover event metadata from vault URLs and page text.
//
// Event-results URLs follow the shape
// /{season}/{series}/... for listing pages and
// /{YYYY-MM-DD}/{class}/{venue-slug} for result pages. The class and venue
// are only present in the URL, while the human-readable race date appears
// somewhere in the page body as "May 10, 2025". The helpers here extract
// each of those pieces independently and fail soft (empty string or zero
// value) so a malformed URL never aborts a crawl.
package event
