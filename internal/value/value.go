// Package value implements the engine's typed value model: DataValue, its
// string projections, and its canonical JSON/YAML serialization.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind tags the variant carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindReal
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a tagged union over exactly Int (signed 32-bit), Real (32-bit
// IEEE-754), Bool, String and Null. The zero Value is Null.
type Value struct {
	kind Kind
	i    int32
	r    float32
	b    bool
	s    string
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Int constructs an Int value.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Real constructs a Real value.
func Real(v float32) Value { return Value{kind: KindReal, r: v} }

// Bool constructs a Bool value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String constructs a String value.
func String(v string) Value { return Value{kind: KindString, s: v} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the carried int32 and whether the value is an Int.
func (v Value) AsInt() (int32, bool) { return v.i, v.kind == KindInt }

// AsReal returns the carried float32 and whether the value is a Real.
func (v Value) AsReal() (float32, bool) { return v.r, v.kind == KindReal }

// AsBool returns the carried bool and whether the value is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsString returns the carried string and whether the value is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// ParseString is the literal used to re-parse the value into another type.
func (v Value) ParseString() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindReal:
		return strconv.FormatFloat(float64(v.r), 'g', -1, 32)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	default:
		return "null"
	}
}

// FormatString is the literal substituted when the value appears in a
// {key} placeholder inside a script. Identical to ParseString for scalars;
// strings are not quoted.
func (v Value) FormatString() string {
	return v.ParseString()
}

// PermutationString is the literal used when concatenating values in
// DuplicatePermutation. Strings are unquoted and used as-is.
func (v Value) PermutationString() string {
	return v.ParseString()
}

// ParseValue parses s into a Value of the given target kind. KindNull is not
// a valid target for parsing and always yields Null.
func ParseValue(s string, target Kind) (Value, error) {
	switch target {
	case KindInt:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("parse int from %q: %w", s, err)
		}
		return Int(int32(n)), nil
	case KindReal:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("parse real from %q: %w", s, err)
		}
		return Real(float32(f)), nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Value{}, fmt.Errorf("parse bool from %q: %w", s, err)
		}
		return Bool(b), nil
	case KindString:
		return String(s), nil
	default:
		return Null(), nil
	}
}

// UnmarshalJSON implements the canonical deserialization rules: an integral
// literal becomes Int (range error if it overflows signed 32-bit), a
// fractional literal becomes Real, a boolean literal becomes Bool, a string
// literal becomes String, and an explicit null becomes Null.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if num, ok := raw.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			raw = i
		} else if f, err := num.Float64(); err == nil {
			raw = f
		} else {
			return err
		}
	}
	parsed, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON serializes the value using the canonical representation.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindReal:
		return json.Marshal(v.r)
	case KindBool:
		return json.Marshal(v.b)
	case KindString:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML implements the same deserialization rules as UnmarshalJSON.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML serializes the value using the canonical representation.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindReal:
		return v.r, nil
	case KindBool:
		return v.b, nil
	case KindString:
		return v.s, nil
	default:
		return nil, nil
	}
}

func fromRaw(raw interface{}) (Value, error) {
	switch n := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(n), nil
	case string:
		return String(n), nil
	case int:
		return intFromInt64(int64(n))
	case int64:
		return intFromInt64(n)
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt32 && n <= math.MaxInt32 {
			return Int(int32(n)), nil
		}
		return Real(float32(n)), nil
	case float32:
		return Real(n), nil
	default:
		return Value{}, fmt.Errorf("value: unsupported literal of type %T", raw)
	}
}

func intFromInt64(n int64) (Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return Value{}, fmt.Errorf("value: integer literal %d does not fit in a signed 32-bit int", n)
	}
	return Int(int32(n)), nil
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.ParseString())
}
