// Package parser turns raw spreadsheet rows into typed cells.
package parser

import (
	"strings"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// headerSeparator splits the parts of a column header annotation.
const headerSeparator = ":"

// Header is a parsed column header annotation such as "owner:customer:ref".
type Header struct {
	// Raw is the header string as it appears in the sheet.
	Raw string
	// Name is the field name cells of this column are stored under.
	Name string
	// Type is the declared type tag. It is not validated here.
	Type models.ValueType
	// RefTarget is the sheet a ref column points into.
	RefTarget string
	// TZFor names the date field this column supplies a timezone for, or
	// is empty when the column is not a timezone companion.
	TZFor string
}

// ParseHeader parses a column header. It never fails: a header without
// separators is a string field named by the whole header.
func ParseHeader(raw string) Header {
	parts := strings.Split(raw, headerSeparator)
	if len(parts) == 1 {
		return Header{Raw: raw, Name: raw, Type: models.TypeString}
	}

	h := Header{
		Raw:  raw,
		Name: parts[0],
		Type: models.ValueType(parts[len(parts)-1]),
	}

	switch h.Type {
	case models.TypeRef:
		h.RefTarget = h.Name
		if len(parts) == 3 {
			h.RefTarget = parts[1]
		}
	case models.TypeTZ:
		// <anything>:<field>:tz
		if len(parts) >= 3 {
			h.TZFor = parts[len(parts)-2]
		}
	}

	return h
}

// ParseHeaders parses every header of a sheet in column order.
func ParseHeaders(raw []string) []Header {
	headers := make([]Header, len(raw))
	for i, r := range raw {
		headers[i] = ParseHeader(r)
	}
	return headers
}
