package sheetgraph

import (
	"fmt"
	"os"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/parser"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/source"
)

// ReadFile reads a workbook file and assembles its graph. Every sheet must
// declare a used range, and that range may not exceed the rows read by more
// than MaxRangeSlack.
func ReadFile(path string, opts Options) (models.Graph, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	sheets, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading workbook %s: %w", path, err)
	}

	for _, sheet := range sheets {
		if err := checkSheet(sheet); err != nil {
			return nil, NewSheetError(sheet.Name, err)
		}
	}

	return assemble(sheets, opts)
}

// checkSheet rejects sheets without a header row and sheets whose range is
// far larger than their content.
func checkSheet(sheet models.RawSheet) error {
	// excelize reports "A1" for a sheet with no cells.
	if sheet.Dimension == "" || sheet.ObservedRows == 0 {
		return ErrEmptySheet
	}

	declared, err := parser.DeclaredRows(sheet.Dimension)
	if err != nil {
		return err
	}
	if declared-sheet.ObservedRows > MaxRangeSlack {
		return &RangeError{
			Dimension:    sheet.Dimension,
			DeclaredRows: declared,
			ObservedRows: sheet.ObservedRows,
		}
	}
	return nil
}

// assemble folds the row assembler over every sheet. One coercer serves
// the whole call so relative dates share a reference instant.
func assemble(sheets []models.RawSheet, opts Options) (models.Graph, error) {
	coercer := parser.NewCoercer(opts.parserConfig())

	g := make(models.Graph, len(sheets))
	for _, raw := range sheets {
		sheet, err := parser.AssembleSheet(raw, coercer)
		if err != nil {
			return nil, NewSheetError(raw.Name, err)
		}
		g[raw.Name] = sheet
	}
	return g, nil
}
