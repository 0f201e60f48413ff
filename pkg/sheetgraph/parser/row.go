package parser

import (
	"strconv"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

const (
	// IDField is the field whose value keys a row.
	IDField = "id"
	// CommentID marks a row that is dropped from its sheet.
	CommentID = "#"
)

// RowAssembler builds typed rows for one sheet.
type RowAssembler struct {
	headers []Header
	idCol   string
	coercer *Coercer
}

// NewRowAssembler parses the sheet's headers and validates their types.
// Blank headers are skipped along with their column.
func NewRowAssembler(rawHeaders []string, coercer *Coercer) (*RowAssembler, error) {
	a := &RowAssembler{coercer: coercer}
	for _, h := range ParseHeaders(rawHeaders) {
		if h.Raw == "" {
			continue
		}
		if err := CheckType(h); err != nil {
			return nil, err
		}
		a.headers = append(a.headers, h)
		if h.Name == IDField && a.idCol == "" {
			a.idCol = h.Raw
		}
	}
	return a, nil
}

// Key returns the row's identity: its id value when the sheet declares an
// id column and the row fills it, else the positional index.
func (a *RowAssembler) Key(raw models.RawRow, index int) string {
	if a.idCol != "" {
		if id, ok := raw[a.idCol]; ok && id != "" {
			return id
		}
	}
	return strconv.Itoa(index)
}

// Assemble types one raw row. index is the row's position among the
// sheet's data rows, comment rows included. keep is false for comment rows.
func (a *RowAssembler) Assemble(raw models.RawRow, index int) (key string, row models.Row, keep bool, err error) {
	key = a.Key(raw, index)
	if key == CommentID {
		return key, nil, false, nil
	}

	// First pass: companion timezones by field name.
	zones := make(map[string]string)
	for _, h := range a.headers {
		if h.TZFor == "" {
			continue
		}
		if tz, ok := raw[h.Raw]; ok && tz != "" {
			zones[h.TZFor] = tz
		}
	}

	row = make(models.Row, len(a.headers))
	for _, h := range a.headers {
		value, present := raw[h.Raw]
		cell, err := a.coercer.Coerce(h, value, present, zones[h.Name])
		if err != nil {
			return key, nil, false, err
		}
		row[h.Name] = cell
	}
	return key, row, true, nil
}
