package param

import "fmt"

// Kind identifies how a stored raw value is parsed. The numeric values
// match the type_id column of the backing table and form a closed set;
// rows carrying any other type_id are rejected, never passed through as
// raw strings.
type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
	KindStringList
	KindIntList
	KindFloatList
	KindDate
)

// String returns the semantic type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string list"
	case KindIntList:
		return "int list"
	case KindFloatList:
		return "float list"
	case KindDate:
		return "date"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsValid reports whether the kind is one of the eight known values.
func (k Kind) IsValid() bool {
	return k >= KindString && k <= KindDate
}
