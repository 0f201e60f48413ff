package sheetgraph

import (
	"sort"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// Build assembles a graph from in-memory matrices, one per sheet. Row 0 of
// each matrix is the header row. Blank cells are absent. Build performs no
// structural checks; it fails only on an unknown column type.
func Build(matrices map[string][][]string, opts Options) (models.Graph, error) {
	names := make([]string, 0, len(matrices))
	for name := range matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	sheets := make([]models.RawSheet, 0, len(names))
	for _, name := range names {
		sheets = append(sheets, matrixSheet(name, matrices[name]))
	}
	return assemble(sheets, opts)
}

// matrixSheet aligns each data row with the header row by position.
// Columns under a blank header are dropped.
func matrixSheet(name string, matrix [][]string) models.RawSheet {
	sheet := models.RawSheet{Name: name, ObservedRows: len(matrix)}
	if len(matrix) == 0 {
		return sheet
	}

	sheet.Headers = matrix[0]
	sheet.Rows = make([]models.RawRow, 0, len(matrix)-1)
	for _, cells := range matrix[1:] {
		row := make(models.RawRow, len(sheet.Headers))
		for colIdx, header := range sheet.Headers {
			if header == "" {
				continue
			}
			if colIdx < len(cells) && cells[colIdx] != "" {
				row[header] = cells[colIdx]
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}
