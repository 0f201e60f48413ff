// Package sheetgraph builds typed, cross-referencing data graphs from
// spreadsheet workbooks whose column headers carry type annotations.
package sheetgraph

import (
	"time"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/parser"
)

// MaxRangeSlack is how many rows a sheet's declared range may exceed the
// rows actually read before ReadFile rejects the sheet.
const MaxRangeSlack = 1000

// Options configures graph construction. The zero value is valid.
type Options struct {
	// ExcludeMetadata omits provenance metadata from every cell, which keeps
	// snapshots of two workbooks comparable.
	ExcludeMetadata bool
	// Trim removes leading and trailing whitespace from string-typed values.
	// Internal whitespace is kept.
	Trim bool
	// Now is the reference clock for relative dates such as "2 days ago".
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default construction options.
func DefaultOptions() Options {
	return Options{}
}

// parserConfig returns the parser configuration for these options.
func (o Options) parserConfig() parser.Config {
	return parser.Config{
		Trim:            o.Trim,
		ExcludeMetadata: o.ExcludeMetadata,
		Now:             o.Now,
	}
}
