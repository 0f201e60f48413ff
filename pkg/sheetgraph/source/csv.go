package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a CSV file as a single sheet named after the file.
func ReadCSV(path string) ([]models.RawSheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sheet, err := readCSVSheet(name, file)
	if err != nil {
		return nil, err
	}
	return []models.RawSheet{sheet}, nil
}

func readCSVSheet(name string, r io.Reader) (models.RawSheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return models.RawSheet{}, fmt.Errorf("reading csv sheet %q: %w", name, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	dimension, err := dataDimension(rows)
	if err != nil {
		return models.RawSheet{}, err
	}
	return rawSheet(name, dimension, rows), nil
}

// dataDimension returns the range from A1 to the last non-empty cell, or
// "" when there is none.
func dataDimension(rows [][]string) (string, error) {
	maxRow, maxCol := -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if maxRow < 0 {
		return "", nil
	}

	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return "A1:" + endCell, nil
}
