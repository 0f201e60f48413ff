package sheetgraph

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2015, time.October, 14, 0, 0, 0, 0, time.UTC)

func testOptions() Options {
	return Options{Now: func() time.Time { return fixedNow }}
}

func fixtureMatrices() map[string][][]string {
	return map[string][][]string{
		"customer": {
			{"id", "name", "owner:customer:ref", "address", "created:date"},
			{"irma", "Irma", "coop", "Glostrup", "1886-08-23"},
			{"coop", "COOP", "", "Albertslund", "2 days ago"},
			{"fakta", "Fakta", "coop", "", ""},
			{"#", "a comment row", "", "", ""},
		},
		"product": {
			{"id", "name", "type"},
			{"apple", "Apple", "fruit"},
		},
		"orderItem": {
			{"id", "customer:ref", "product:ref", "quantity:num", "price:num"},
			{"irma-apples", "irma", "apple", "200", "expect:12.75"},
		},
		"meeting": {
			{"id", "created:date", "timezone:created:tz"},
			{"kickoff", "2015-09-14 09:00:00", "Europe/Copenhagen"},
			{"landing", "1886-08-23T17:43:00Z", ""},
		},
	}
}

// writeWorkbook saves matrices as an xlsx file, one sheet per matrix in
// name order, and returns its path.
func writeWorkbook(t *testing.T, matrices map[string][][]string) string {
	t.Helper()

	names := make([]string, 0, len(matrices))
	for name := range matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for rowIdx, cells := range matrices[name] {
			for colIdx, value := range cells {
				if value == "" {
					continue
				}
				cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellStr(name, cellName, value))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// sources builds the fixture graph from a file and from matrices.
func sources(t *testing.T, opts Options) map[string]models.Graph {
	t.Helper()

	fromFile, err := ReadFile(writeWorkbook(t, fixtureMatrices()), opts)
	require.NoError(t, err)

	fromMatrices, err := Build(fixtureMatrices(), opts)
	require.NoError(t, err)

	return map[string]models.Graph{"file": fromFile, "object": fromMatrices}
}
