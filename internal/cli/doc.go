// Package cli implements the command-line interface for mxvault.
//
// The cli package provides the Cobra-based CLI that runs the full crawl:
// it loads the crawl scope from a YAML config file and flags, drives the
// scraper's discovery and extraction stages, hands the parsed pages to
// storage for CSV export, and prints a run summary as text or JSON.
package cli
