// Package param models rows of the backing parameter table and coerces
// their raw string values into typed ones. Validation and coercion are
// separate stages: a fetched row is first checked for the required column
// set, then parsed according to its type_id.
package param

import (
	"fmt"
	"sort"
)

// requiredColumns is the column set every fetched row must carry before
// coercion is attempted, whether or not the coercion path reads them all.
var requiredColumns = []string{"id", "name", "description", "type_id", "value", "debugmode"}

// Row is a validated record from the backing table.
type Row struct {
	App         string
	Name        string
	Description string
	TypeID      int
	RawValue    string
	DebugMode   bool
}

// Parameter is the coerced output: a parameter name and its typed value.
type Parameter struct {
	Name  string
	Value Value
}

// ValidateMap checks that the fetched row carries every required column.
// It returns a *MissingColumnsError naming exactly the absent columns.
func ValidateMap(fields map[string]any) error {
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := fields[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// RowFromMap validates the fetched row and converts it into a Row.
// Drivers differ in how they surface integers and text, so type_id is
// accepted in any integer shape and value in string or []byte form.
func RowFromMap(fields map[string]any) (Row, error) {
	if len(fields) == 0 {
		return Row{}, ErrEmptyRow
	}
	if err := ValidateMap(fields); err != nil {
		return Row{}, err
	}
	typeID, ok := intField(fields["type_id"])
	if !ok {
		return Row{}, &IncompatibleTypeError{TypeID: fields["type_id"]}
	}
	return Row{
		App:         stringField(fields["id"]),
		Name:        stringField(fields["name"]),
		Description: stringField(fields["description"]),
		TypeID:      typeID,
		RawValue:    stringField(fields["value"]),
		DebugMode:   boolField(fields["debugmode"]),
	}, nil
}

// Extract composes validation and coercion: it turns one fetched row into
// a named, typed parameter.
func Extract(fields map[string]any) (Parameter, error) {
	row, err := RowFromMap(fields)
	if err != nil {
		return Parameter{}, err
	}
	v, err := Coerce(row)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Name: row.Name, Value: v}, nil
}

func intField(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func stringField(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	}
	return fmt.Sprint(v)
}

func boolField(v any) bool {
	b, _ := v.(bool)
	return b
}
