// Package storage persists crawl output as flat CSV files in an export
// directory.
//
// Result rows from different pages carry different table columns (SX pages
// have a Machine column, MX and SMX pages have Moto 1/Moto 2), so the
// results file is written with the union of all headers in first-seen
// order, with metadata columns always first and unknown cells left empty.
package storage
