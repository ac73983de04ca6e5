package arith

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reusee/exprs/values"
)

var ErrCoercion = errors.New("coercion failed")

// CoercionError reports that an operand cannot supply a number of the target kind.
type CoercionError struct {
	Operand values.Value
	Target  values.Kind
	Err     error
}

func (c *CoercionError) Error() string {
	msg := fmt.Sprintf("cannot coerce %s to %s", values.Format(c.Operand), c.Target)
	if c.Err != nil {
		msg += ": " + c.Err.Error()
	}
	return msg
}

func (c *CoercionError) Unwrap() []error {
	if c.Err == nil {
		return []error{ErrCoercion}
	}
	return []error{ErrCoercion, c.Err}
}

// ToFloat coerces v to float64. Null is zero.
func ToFloat(v values.Value) (float64, error) {
	switch v := v.(type) {
	case nil, values.Null:
		return 0, nil
	case values.Int8:
		return float64(v), nil
	case values.Int16:
		return float64(v), nil
	case values.Int32:
		return float64(v), nil
	case values.Int64:
		return float64(v), nil
	case values.Float32:
		return float64(v), nil
	case values.Float64:
		return float64(v), nil
	case values.String:
		f, err := parseFloat(string(v))
		if err != nil {
			return 0, &CoercionError{
				Operand: v,
				Target:  values.KindFloat64,
				Err:     err,
			}
		}
		return f, nil
	}
	return 0, &CoercionError{
		Operand: v,
		Target:  values.KindFloat64,
	}
}

// ToInteger coerces v to int64. Null is zero; floats never coerce.
func ToInteger(v values.Value) (int64, error) {
	switch v := v.(type) {
	case nil, values.Null:
		return 0, nil
	case values.Int8:
		return int64(v), nil
	case values.Int16:
		return int64(v), nil
	case values.Int32:
		return int64(v), nil
	case values.Int64:
		return int64(v), nil
	case values.String:
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, &CoercionError{
				Operand: v,
				Target:  values.KindInt64,
				Err:     err,
			}
		}
		return i, nil
	}
	return 0, &CoercionError{
		Operand: v,
		Target:  values.KindInt64,
	}
}

var errFloatSyntax = errors.New("invalid floating literal")

// parseFloat accepts the decimal floating literals of the host language:
// surrounding control characters and spaces are ignored, one trailing
// type suffix (f, F, d, D) is allowed, and only NaN and [+-]Infinity
// spell non-finite values. Overflow yields an infinity.
func parseFloat(s string) (float64, error) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
	if s == "" {
		return 0, errFloatSyntax
	}

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return 0, errFloatSyntax
	}
	switch body {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		if s[0] == '-' {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	switch s[len(s)-1] {
	case 'f', 'F', 'd', 'D':
		s = s[:len(s)-1]
	}
	if strings.ContainsAny(s, "_xXpPiInN") {
		return 0, errFloatSyntax
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}
