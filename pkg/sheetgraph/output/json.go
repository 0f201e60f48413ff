// Package output serializes assembled graphs.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// ToJSON encodes a graph canonically: map keys sorted and, when pretty,
// indented by two spaces.
func ToJSON(g models.Graph, pretty bool) ([]byte, error) {
	if g == nil {
		g = models.Graph{}
	}
	return marshal(g, pretty)
}

// SheetToJSON encodes a single sheet the same way as ToJSON.
func SheetToJSON(sheet models.Sheet, pretty bool) ([]byte, error) {
	if sheet == nil {
		sheet = models.Sheet{}
	}
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
