package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected Header
	}{
		{"id", Header{Raw: "id", Name: "id", Type: models.TypeString}},
		{"quantity:num", Header{Raw: "quantity:num", Name: "quantity", Type: models.TypeNum}},
		{"created:date", Header{Raw: "created:date", Name: "created", Type: models.TypeDate}},
		{"customer:ref", Header{Raw: "customer:ref", Name: "customer", Type: models.TypeRef, RefTarget: "customer"}},
		{"owner:customer:ref", Header{Raw: "owner:customer:ref", Name: "owner", Type: models.TypeRef, RefTarget: "customer"}},
		{"timezone:created:tz", Header{Raw: "timezone:created:tz", Name: "timezone", Type: models.TypeTZ, TZFor: "created"}},
		{"zone:tz", Header{Raw: "zone:tz", Name: "zone", Type: models.TypeTZ}},
		{"a:b:created:tz", Header{Raw: "a:b:created:tz", Name: "a", Type: models.TypeTZ, TZFor: "created"}},
		{"price:money", Header{Raw: "price:money", Name: "price", Type: "money"}},
		{"", Header{Raw: "", Name: "", Type: models.TypeString}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseHeader(tt.input), "ParseHeader(%q)", tt.input)
	}
}

func TestParseHeaders(t *testing.T) {
	headers := ParseHeaders([]string{"id", "owner:customer:ref"})

	assert.Len(t, headers, 2)
	assert.Equal(t, "id", headers[0].Name)
	assert.Equal(t, "owner", headers[1].Name)
}
