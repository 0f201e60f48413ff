package models

// RawRow maps a column header to the raw cell text. A header missing from
// the map is an absent cell.
type RawRow map[string]string

// RawSheet is one sheet as produced by a workbook adapter, before any
// typing.
type RawSheet struct {
	// Name is the sheet name.
	Name string
	// Dimension is the declared used range (e.g. "A1:L20"), empty when the
	// sheet declares none.
	Dimension string
	// Headers are the column headers in column order.
	Headers []string
	// Rows are the data rows following the header row.
	Rows []RawRow
	// ObservedRows is the number of physical rows the adapter read,
	// header row included.
	ObservedRows int
}
