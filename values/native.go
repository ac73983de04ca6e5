package values

import (
	"math"
	"reflect"
)

// FromGo wraps a Go value. Unsigned integers widen to the next signed width.
func FromGo(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case bool:
		return Bool(v)
	case int8:
		return Int8(v)
	case int16:
		return Int16(v)
	case int32:
		return Int32(v)
	case int64:
		return Int64(v)
	case int:
		return Int64(v)
	case uint8:
		return Int16(v)
	case uint16:
		return Int32(v)
	case uint32:
		return Int64(v)
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return Int64(v)
		}
	case uint64:
		if v <= math.MaxInt64 {
			return Int64(v)
		}
	case uintptr:
		if uint64(v) <= math.MaxInt64 {
			return Int64(v)
		}
	case float32:
		return Float32(v)
	case float64:
		return Float64(v)
	case string:
		return String(v)
	}
	return Other{V: v}
}

// Native unwraps v into the corresponding Go value.
func Native(v Value) any {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Int8:
		return int8(v)
	case Int16:
		return int16(v)
	case Int32:
		return int32(v)
	case Int64:
		return int64(v)
	case Float32:
		return float32(v)
	case Float64:
		return float64(v)
	case String:
		return string(v)
	case Other:
		return v.V
	}
	return nil
}

// Equal reports whether a and b have the same kind and payload.
// Floats compare by bits, so NaN equals itself.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case Float32:
		return math.Float32bits(float32(a)) == math.Float32bits(float32(b.(Float32)))
	case Float64:
		return math.Float64bits(float64(a)) == math.Float64bits(float64(b.(Float64)))
	case Other:
		return reflect.DeepEqual(a.V, b.(Other).V)
	}
	return a == b
}
