package output

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

func TestToJSON(t *testing.T) {
	raw := "coop"
	g := models.Graph{
		"customer": {
			"irma": {
				"owner": {
					Metadata: &models.Metadata{Header: "owner:customer:ref", Name: "owner", Type: models.TypeRef, RefTarget: "customer", Raw: &raw},
					Slot:     models.SlotValue,
					Data:     &models.Value{Type: models.TypeRef, Raw: raw, Text: raw, Target: "customer"},
				},
				"created": {
					Slot: models.SlotValue,
					Data: &models.Value{Type: models.TypeDate, Time: time.Date(1886, time.August, 23, 0, 0, 0, 0, time.UTC)},
				},
				"address": {Slot: models.SlotValue},
			},
		},
		"orderItem": {
			"irma-apples": {
				"price":    {Slot: models.SlotExpect, Data: &models.Value{Type: models.TypeNum, Raw: "12.75", Num: 12.75}},
				"quantity": {Slot: models.SlotValue, Data: &models.Value{Type: models.TypeNum, Raw: "x", Num: math.NaN()}},
			},
		},
	}

	data, err := ToJSON(g, false)
	require.NoError(t, err)

	var decoded map[string]map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	irma := decoded["customer"]["irma"]
	assert.Equal(t, "coop", irma["owner"]["value"])
	assert.Equal(t, "customer", irma["owner"]["metadata"].(map[string]interface{})["refTarget"])
	assert.Equal(t, float64(time.Date(1886, time.August, 23, 0, 0, 0, 0, time.UTC).UnixMilli()), irma["created"]["value"])
	assert.NotContains(t, irma["created"], "metadata")
	assert.Contains(t, irma["address"], "value")
	assert.Nil(t, irma["address"]["value"])

	item := decoded["orderItem"]["irma-apples"]
	assert.Equal(t, 12.75, item["price"]["expect"])
	assert.NotContains(t, item["price"], "value")
	assert.Nil(t, item["quantity"]["value"])
}

func TestToJSONCanonical(t *testing.T) {
	g := models.Graph{
		"b": {"1": {"x": {Slot: models.SlotValue}}},
		"a": {"0": {"y": {Slot: models.SlotValue, Data: &models.Value{Type: models.TypeString, Text: "v"}}}},
	}

	first, err := ToJSON(g, true)
	require.NoError(t, err)
	second, err := ToJSON(g, true)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Less(t, strings.Index(string(first), `"a"`), strings.Index(string(first), `"b"`))
	assert.Contains(t, string(first), "\n  \"a\": {")
}

func TestToJSONEmpty(t *testing.T) {
	data, err := ToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	data, err = SheetToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
