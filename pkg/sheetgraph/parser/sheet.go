package parser

import (
	"fmt"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// RowError locates a failure to a data row of a sheet.
type RowError struct {
	// Index is the 0-based data row index.
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// AssembleSheet types every row of a raw sheet. Rows sharing a key
// overwrite earlier ones.
func AssembleSheet(raw models.RawSheet, coercer *Coercer) (models.Sheet, error) {
	assembler, err := NewRowAssembler(raw.Headers, coercer)
	if err != nil {
		return nil, err
	}

	sheet := make(models.Sheet, len(raw.Rows))
	for idx, rawRow := range raw.Rows {
		key, row, keep, err := assembler.Assemble(rawRow, idx)
		if err != nil {
			return nil, &RowError{Index: idx, Err: err}
		}
		if !keep {
			continue
		}
		sheet[key] = row
	}
	return sheet, nil
}
