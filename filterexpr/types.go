package filterexpr

import "strconv"

// Type represents the data type of a value in the filter system.
type Type uint8

const (
	TypeNumber Type = iota
	TypeBool
	TypeString
)

var typeNames = map[Type]string{
	TypeNumber: "number",
	TypeBool:   "boolean",
	TypeString: "string",
}

// String returns the human-readable name of the type, as it appears in
// type-check error messages.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Value is the interface that all value types must implement. A nil Value
// is the "unknown" sentinel: it never satisfies a comparison.
type Value interface {
	Type() Type
	Equal(other Value) bool
	String() string
	IsTruthy() bool
}

// StringValue represents a string value. Empty strings are falsy.
type StringValue string

func (s StringValue) Type() Type     { return TypeString }
func (s StringValue) String() string { return string(s) }
func (s StringValue) IsTruthy() bool { return len(s) > 0 }
func (s StringValue) Equal(v Value) bool {
	if v.Type() != TypeString {
		return false
	}
	return string(s) == string(v.(StringValue))
}

// NumberValue represents a numeric value. Zero is falsy.
type NumberValue float64

func (n NumberValue) Type() Type     { return TypeNumber }
func (n NumberValue) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }
func (n NumberValue) IsTruthy() bool { return n != 0 }
func (n NumberValue) Equal(v Value) bool {
	if v.Type() != TypeNumber {
		return false
	}
	return float64(n) == float64(v.(NumberValue))
}

// BoolValue represents a boolean value.
type BoolValue bool

func (b BoolValue) Type() Type     { return TypeBool }
func (b BoolValue) String() string { return strconv.FormatBool(bool(b)) }
func (b BoolValue) IsTruthy() bool { return bool(b) }
func (b BoolValue) Equal(v Value) bool {
	if v.Type() != TypeBool {
		return false
	}
	return bool(b) == bool(v.(BoolValue))
}
