package values

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var ErrNoText = errors.New("value has no text representation")

// Text returns the canonical text of v, as used by string concatenation.
func Text(v Value) (string, error) {
	switch v := v.(type) {
	case nil, Null:
		return "null", nil
	case Bool:
		return strconv.FormatBool(bool(v)), nil
	case Int8:
		return strconv.FormatInt(int64(v), 10), nil
	case Int16:
		return strconv.FormatInt(int64(v), 10), nil
	case Int32:
		return strconv.FormatInt(int64(v), 10), nil
	case Int64:
		return strconv.FormatInt(int64(v), 10), nil
	case Float32:
		return formatFloat(float64(v), 32), nil
	case Float64:
		return formatFloat(float64(v), 64), nil
	case String:
		return string(v), nil
	case Other:
		return otherText(v.V)
	}
	return "", fmt.Errorf("%w: %T", ErrNoText, v)
}

func otherText(v any) (ret string, err error) {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Invalid:
		return "", fmt.Errorf("%w: nil", ErrNoText)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if value.IsNil() {
			return "", fmt.Errorf("%w: nil %T", ErrNoText, v)
		}
	}

	// text methods of foreign types may panic
	defer func() {
		if p := recover(); p != nil {
			ret = ""
			err = fmt.Errorf("%w: %T: panic: %v", ErrNoText, v, p)
		}
	}()

	switch v := v.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case encoding.TextMarshaler:
		bs, err := v.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoText, err)
		}
		return string(bs), nil
	case error:
		return v.Error(), nil
	}

	switch value.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v), nil
	}

	return "", fmt.Errorf("%w: %T", ErrNoText, v)
}

// formatFloat renders f the way the language has always printed floats:
// plain decimal with at least one fractional digit inside [1e-3, 1e7),
// computerized scientific notation outside of it.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}

// Format renders v for diagnostics. Unlike Text it never fails and keeps the kind visible.
func Format(v Value) string {
	switch v := v.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(v))
	case String:
		return strconv.Quote(string(v))
	case Other:
		if text, err := otherText(v.V); err == nil {
			return fmt.Sprintf("other(%T %s)", v.V, text)
		}
		return fmt.Sprintf("other(%T)", v.V)
	}
	text, err := Text(v)
	if err != nil {
		return fmt.Sprintf("%s(?)", v.Kind())
	}
	return fmt.Sprintf("%s(%s)", v.Kind(), text)
}
