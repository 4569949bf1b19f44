package param

import (
	"strconv"
	"strings"
	"time"
)

// Value is the coerced form of a stored parameter: a kind tag plus the
// payload for that kind. Accessors return the payload and true only when
// the kind matches.
type Value struct {
	kind   Kind
	str    string
	num    int64
	fl     float64
	b      bool
	strs   []string
	nums   []int64
	floats []float64
	t      time.Time
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) {
	return v.fl, v.kind == KindFloat
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsStringList returns the string-list payload.
func (v Value) AsStringList() ([]string, bool) {
	return v.strs, v.kind == KindStringList
}

// AsIntList returns the integer-list payload.
func (v Value) AsIntList() ([]int64, bool) {
	return v.nums, v.kind == KindIntList
}

// AsFloatList returns the float-list payload.
func (v Value) AsFloatList() ([]float64, bool) {
	return v.floats, v.kind == KindFloatList
}

// AsDate returns the date payload.
func (v Value) AsDate() (time.Time, bool) {
	return v.t, v.kind == KindDate
}

// Any returns the payload as an untyped value: string, int64, float64,
// bool, []string, []int64, []float64, or time.Time depending on the kind.
// It returns nil for the zero Value.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.fl
	case KindBool:
		return v.b
	case KindStringList:
		return v.strs
	case KindIntList:
		return v.nums
	case KindFloatList:
		return v.floats
	case KindDate:
		return v.t
	}
	return nil
}

// String renders the value for display. Lists are comma-joined, dates use
// the "2006-01-02 15:04:05" layout.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.fl, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStringList:
		return strings.Join(v.strs, ",")
	case KindIntList:
		parts := make([]string, len(v.nums))
		for i, n := range v.nums {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ",")
	case KindFloatList:
		parts := make([]string, len(v.floats))
		for i, f := range v.floats {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	case KindDate:
		return v.t.Format("2006-01-02 15:04:05")
	}
	return ""
}
