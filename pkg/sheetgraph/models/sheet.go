package models

// Row maps parsed field name to cell.
type Row map[string]Cell

// Sheet maps row key to row. Keys are the row's id value or, for rows
// without one, the decimal positional index.
type Sheet map[string]Row
