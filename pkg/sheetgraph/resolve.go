package sheetgraph

import "github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"

// Resolve returns the row a reference cell points to. ok is false when the
// cell is not a ref cell, carries no value, or names a sheet or row that
// does not exist in g.
func Resolve(cell models.Cell, g models.Graph) (row models.Row, ok bool) {
	v := cell.Value()
	if v == nil || v.Type != models.TypeRef {
		return nil, false
	}
	return g.Lookup(v.Target, v.Text)
}
