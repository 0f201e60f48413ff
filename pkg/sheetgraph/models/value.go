// Package models defines the typed data graph built from spreadsheet rows.
package models

import (
	"math"
	"time"
)

// ValueType is the declared type of a column, taken from the last part of
// its header annotation.
type ValueType string

const (
	// TypeString keeps the raw text (optionally trimmed).
	TypeString ValueType = "string"
	// TypeNum parses the raw text as a float64.
	TypeNum ValueType = "num"
	// TypeDate parses the raw text into an absolute instant.
	TypeDate ValueType = "date"
	// TypeTZ passes a timezone identifier through unchanged.
	TypeTZ ValueType = "tz"
	// TypeRef keeps the raw text as a row key into another sheet.
	TypeRef ValueType = "ref"
)

// ValueTypes lists every declared value type.
var ValueTypes = []ValueType{TypeString, TypeNum, TypeDate, TypeTZ, TypeRef}

// Value is a coerced cell payload. Which field carries the payload depends
// on Type: Text for string, tz and ref; Num for num; Time for date.
type Value struct {
	// Type is the column type the payload was coerced with.
	Type ValueType
	// Raw is the cell text the payload was coerced from.
	Raw string
	// Text holds string, tz and ref payloads.
	Text string
	// Target is the sheet a ref payload is a row key into.
	Target string
	// Num holds num payloads. Non-numeric input is NaN.
	Num float64
	// Time holds date payloads, always in UTC.
	Time time.Time
}

// Millis returns a date payload as milliseconds since the Unix epoch.
func (v Value) Millis() int64 {
	return v.Time.UnixMilli()
}

// Interface returns the payload as a plain Go value suitable for encoding:
// string, float64 (nil for NaN) or int64 epoch milliseconds.
func (v Value) Interface() interface{} {
	switch v.Type {
	case TypeNum:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return nil
		}
		return v.Num
	case TypeDate:
		return v.Millis()
	default:
		return v.Text
	}
}
