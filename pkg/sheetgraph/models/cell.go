package models

import "encoding/json"

// Slot names which of a cell's two value slots is populated.
type Slot string

const (
	// SlotValue holds live data.
	SlotValue Slot = "value"
	// SlotExpect holds an expected value, selected by the "expect:" prefix.
	SlotExpect Slot = "expect"
)

// Metadata records where a cell came from.
type Metadata struct {
	// Header is the raw column header the cell was read under.
	Header string `json:"header"`
	// Name is the field name parsed from the header.
	Name string `json:"name"`
	// Type is the declared column type.
	Type ValueType `json:"type"`
	// RefTarget is the sheet a ref column points into.
	RefTarget string `json:"refTarget,omitempty"`
	// Raw is the raw cell text; nil when the cell was empty.
	Raw *string `json:"raw,omitempty"`
	// TZ is the companion timezone applied to a date cell.
	TZ string `json:"tz,omitempty"`
}

// Cell is one field of a row: a single populated slot plus optional
// provenance. It is plain data; see sheetgraph.Resolve for references.
type Cell struct {
	// Metadata is nil when metadata was excluded.
	Metadata *Metadata
	// Slot is the populated slot.
	Slot Slot
	// Data is the slot payload; nil means null.
	Data *Value
}

// Value returns the value-slot payload, or nil when the value slot is null
// or the cell carries an expectation instead.
func (c Cell) Value() *Value {
	if c.Slot != SlotValue {
		return nil
	}
	return c.Data
}

// Expect returns the expectation-slot payload, or nil when the cell carries
// a value instead.
func (c Cell) Expect() *Value {
	if c.Slot != SlotExpect {
		return nil
	}
	return c.Data
}

// IsNull reports whether the populated slot has no payload.
func (c Cell) IsNull() bool {
	return c.Data == nil
}

// MarshalJSON encodes the cell as {"metadata": ..., "<slot>": payload}.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 2)
	if c.Metadata != nil {
		out["metadata"] = c.Metadata
	}
	slot := c.Slot
	if slot == "" {
		slot = SlotValue
	}
	if c.Data != nil {
		out[string(slot)] = c.Data.Interface()
	} else {
		out[string(slot)] = nil
	}
	return json.Marshal(out)
}
