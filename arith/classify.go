package arith

import (
	"strings"

	"github.com/reusee/exprs/values"
)

// Path is the arithmetic family an addition attempts.
type Path uint8

const (
	Integral Path = iota
	Floating
)

func (p Path) String() string {
	switch p {
	case Integral:
		return "integral"
	case Floating:
		return "floating"
	}
	return "invalid"
}

// Classify selects the floating path when either operand is a float, or a
// string containing '.', 'e' or 'E'. The string check is textual only.
func Classify(left, right values.Value) Path {
	if looksFloating(left) || looksFloating(right) {
		return Floating
	}
	return Integral
}

func looksFloating(v values.Value) bool {
	switch v := v.(type) {
	case values.Float32, values.Float64:
		return true
	case values.String:
		return strings.ContainsAny(string(v), ".eE")
	}
	return false
}
