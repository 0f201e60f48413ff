// Package source reads workbook files into raw sheets.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// ErrUnsupportedFormat indicates a file extension no adapter handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// Format identifies a workbook adapter.
type Format string

const (
	// FormatXLSX covers the Office Open XML spreadsheet family.
	FormatXLSX Format = "xlsx"
	// FormatCSV is a single-sheet comma separated file.
	FormatCSV Format = "csv"
)

// DetectFormat picks the adapter for a path by its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Open reads every sheet of the workbook at path, in workbook order.
func Open(path string) ([]models.RawSheet, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return ReadCSV(path)
	default:
		return ReadXLSX(path)
	}
}

// rawRow maps headers to the non-empty cells of one physical row. Columns
// beyond the header row and blank headers are ignored. ok is false for a
// row with no data.
func rawRow(headers, cells []string) (row models.RawRow, ok bool) {
	row = make(models.RawRow)
	for colIdx, cellValue := range cells {
		if cellValue == "" || colIdx >= len(headers) || headers[colIdx] == "" {
			continue
		}
		row[headers[colIdx]] = cellValue
	}
	return row, len(row) > 0
}

// rawSheet splits physical rows into the header row and data rows.
func rawSheet(name, dimension string, rows [][]string) models.RawSheet {
	sheet := models.RawSheet{
		Name:         name,
		Dimension:    dimension,
		ObservedRows: len(rows),
	}
	if len(rows) == 0 {
		return sheet
	}

	sheet.Headers = rows[0]
	for _, cells := range rows[1:] {
		if row, ok := rawRow(sheet.Headers, cells); ok {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet
}
