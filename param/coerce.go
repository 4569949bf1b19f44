package param

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// truthy holds the tokens recognized as boolean true, compared
// case-insensitively. Any other value is false, never an error.
var truthy = map[string]bool{
	"y": true, "yes": true, "t": true, "true": true,
	"on": true, "1": true, "ja": true,
}

// Coerce parses the row's raw value according to its type_id. An unknown
// type_id is a hard error; a parse failure is reported with the raw value
// and type_id attached.
func Coerce(row Row) (Value, error) {
	kind := Kind(row.TypeID)
	if !kind.IsValid() {
		return Value{}, &IncompatibleTypeError{TypeID: row.TypeID}
	}
	v, err := kind.parse(row.RawValue)
	if err != nil {
		return Value{}, &ConversionError{Raw: row.RawValue, TypeID: row.TypeID, Err: err}
	}
	return v, nil
}

// parse converts a raw string into a Value of the receiver kind. The
// switch is exhaustive over the closed kind set; Coerce guards validity.
func (k Kind) parse(raw string) (Value, error) {
	switch k {
	case KindString:
		return Value{kind: k, str: raw}, nil

	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: k, num: n}, nil

	case KindFloat:
		f, err := parseDecimal(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: k, fl: f}, nil

	case KindBool:
		return Value{kind: k, b: truthy[strings.ToLower(raw)]}, nil

	case KindStringList:
		return Value{kind: k, strs: strings.Split(raw, ",")}, nil

	case KindIntList:
		parts := strings.Split(raw, ",")
		nums := make([]int64, len(parts))
		for i, p := range parts {
			n, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return Value{}, err
			}
			nums[i] = n
		}
		return Value{kind: k, nums: nums}, nil

	case KindFloatList:
		parts := strings.Split(raw, ",")
		floats := make([]float64, len(parts))
		for i, p := range parts {
			f, err := parseDecimal(p)
			if err != nil {
				return Value{}, err
			}
			floats[i] = f
		}
		return Value{kind: k, floats: floats}, nil

	case KindDate:
		t, err := parseDate(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: k, t: t}, nil
	}
	return Value{}, fmt.Errorf("unhandled kind %d", int(k))
}

// parseDecimal parses a decimal number accepting both "." and "," as the
// decimal separator. The dot form is tried first.
func parseDecimal(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, nil
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if f, commaErr := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); commaErr == nil {
			return f, nil
		}
	}
	return 0, err
}

// parseDate tries the supported date layouts in order.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
}
