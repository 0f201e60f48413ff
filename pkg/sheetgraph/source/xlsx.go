package source

import (
	"fmt"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads every sheet of an Office Open XML workbook. Cell text is
// the formatted value as shown by a spreadsheet application.
func ReadXLSX(path string) ([]models.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) ([]models.RawSheet, error) {
	var sheets []models.RawSheet
	for _, sheetName := range f.GetSheetList() {
		dimension, err := f.GetSheetDimension(sheetName)
		if err != nil {
			return nil, fmt.Errorf("reading dimension of sheet %q: %w", sheetName, err)
		}

		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("reading rows of sheet %q: %w", sheetName, err)
		}

		sheets = append(sheets, rawSheet(sheetName, dimension, rows))
	}
	return sheets, nil
}
