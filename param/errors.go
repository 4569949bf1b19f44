package param

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRow is returned when a parameter is extracted from a nil or
// empty row.
var ErrEmptyRow = errors.New("no row supplied")

// MissingColumnsError reports a fetched row that lacks one or more of the
// required columns. Columns is sorted and names exactly the absent ones.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "row is missing required columns: " + strings.Join(e.Columns, ", ")
}

// IncompatibleTypeError reports a type_id with no entry in the closed kind
// set. TypeID carries the offending value as fetched, which may not even
// be an integer.
type IncompatibleTypeError struct {
	TypeID any
}

func (e *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("incompatible type_id %v", e.TypeID)
}

// ConversionError reports a raw value that could not be parsed for its
// kind. It preserves the raw value, the type_id, and the underlying parse
// error.
type ConversionError struct {
	Raw    string
	TypeID int
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert value %q with type_id %d: %v", e.Raw, e.TypeID, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
