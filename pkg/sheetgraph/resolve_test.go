package sheetgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMissingTargets(t *testing.T) {
	g, err := Build(map[string][][]string{
		"orderItem": {
			{"id", "customer:ref", "product:ref", "vendor:supplier:ref", "name"},
			{"a", "nobody", "", "acme", "Order A"},
			{"b", "expect:irma", "", "", ""},
		},
		"customer": {{"id"}},
	}, testOptions())
	require.NoError(t, err)

	tests := []struct {
		name  string
		row   string
		field string
	}{
		{"unknown row key", "a", "customer"},
		{"null reference", "a", "product"},
		{"unknown sheet", "a", "vendor"},
		{"not a reference", "a", "name"},
		{"expectation slot", "b", "customer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := Resolve(g["orderItem"][tt.row][tt.field], g)
			assert.False(t, ok)
			assert.Nil(t, row)
		})
	}
}
