package models

import "sort"

// Graph is an assembled workbook: sheet name → row key → field name → cell.
// It is never mutated after construction and may be shared between readers.
type Graph map[string]Sheet

// Lookup returns the row stored under key in the named sheet.
func (g Graph) Lookup(sheet, key string) (Row, bool) {
	s, ok := g[sheet]
	if !ok {
		return nil, false
	}
	row, ok := s[key]
	return row, ok
}

// SheetNames returns the sheet names in lexical order.
func (g Graph) SheetNames() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
