package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRange is a rectangular block of cells in 1-based coordinates.
type CellRange struct {
	R1, C1 int
	R2, C2 int
}

// Rows returns the number of rows the range spans.
func (r CellRange) Rows() int {
	return r.R2 - r.R1 + 1
}

// ParseRange parses a range reference like "A1:L20", "$A$1:$D$10" or a
// single cell "A1".
func ParseRange(ref string) (CellRange, error) {
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return CellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if len(parts) == 1 {
		return CellRange{R1: r1, C1: c1, R2: r1, C2: c1}, nil
	}

	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return CellRange{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return CellRange{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

// DeclaredRows returns the last row a sheet's declared range reaches,
// which is the row count implied by the declaration.
func DeclaredRows(dimension string) (int, error) {
	r, err := ParseRange(dimension)
	if err != nil {
		return 0, err
	}
	return r.R2, nil
}
