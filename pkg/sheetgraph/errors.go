package sheetgraph

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/parser"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/source"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension has no reader.
var ErrUnsupportedFormat = source.ErrUnsupportedFormat

// ErrEmptySheet indicates a sheet has no header row.
var ErrEmptySheet = errors.New("appears to be empty")

// ErrRangeMismatch indicates a sheet's declared range is far larger than
// the rows it contains.
var ErrRangeMismatch = errors.New("declared range exceeds actual rows")

// SheetError represents a failure while assembling one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Err:       err,
	}
}

// RangeError reports a sheet whose declared range implies more than
// MaxRangeSlack rows beyond those actually read.
type RangeError struct {
	Dimension    string
	DeclaredRows int
	ObservedRows int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("declared range %s implies %d rows but only %d rows were read",
		e.Dimension, e.DeclaredRows, e.ObservedRows)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRangeMismatch
}

// IsUnknownType reports whether err was caused by a column header with an
// unknown type tag.
func IsUnknownType(err error) bool {
	var typeErr *parser.UnknownTypeError
	return errors.As(err, &typeErr)
}
