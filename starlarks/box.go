package starlarks

import (
	"fmt"
	"math"

	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/values"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Box carries a runtime value through starlark code.
// The + operator on a Box follows arith.Add.
type Box struct {
	Value values.Value
}

var (
	_ starlark.Value      = Box{}
	_ starlark.HasBinary  = Box{}
	_ starlark.Comparable = Box{}
)

func (b Box) String() string {
	return values.Format(b.Value)
}

// Type is prefixed to keep boxes apart from the builtin types of the same name.
func (b Box) Type() string {
	if b.Value == nil {
		return "exprs." + values.KindNull.String()
	}
	return "exprs." + b.Value.Kind().String()
}

func (b Box) Freeze() {}

func (b Box) Truth() starlark.Bool {
	switch v := b.Value.(type) {
	case nil, values.Null:
		return false
	case values.Bool:
		return starlark.Bool(v)
	case values.Int8:
		return v != 0
	case values.Int16:
		return v != 0
	case values.Int32:
		return v != 0
	case values.Int64:
		return v != 0
	case values.Float32:
		return starlark.Bool(v != 0 && !math.IsNaN(float64(v)))
	case values.Float64:
		return starlark.Bool(v != 0 && !math.IsNaN(float64(v)))
	case values.String:
		return v != ""
	}
	return true
}

func (b Box) Hash() (uint32, error) {
	if other, ok := b.Value.(values.Other); ok {
		return 0, fmt.Errorf("unhashable: %s", values.Format(other))
	}
	return starlark.String(values.Format(b.Value)).Hash()
}

func (b Box) Binary(op syntax.Token, y starlark.Value, side starlark.Side) (starlark.Value, error) {
	if op != syntax.PLUS {
		return nil, nil
	}
	other := FromStarlark(y)
	left, right := b.Value, other
	if side == starlark.Right {
		left, right = other, b.Value
	}
	result, err := arith.Add(left, right)
	if err != nil {
		return nil, err
	}
	return Box{Value: result}, nil
}

func (b Box) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	other, ok := y.(Box)
	if !ok {
		return false, fmt.Errorf("cannot compare %s with %s", b.Type(), y.Type())
	}
	switch op {
	case syntax.EQL:
		return values.Equal(b.Value, other.Value), nil
	case syntax.NEQ:
		return !values.Equal(b.Value, other.Value), nil
	}
	return false, fmt.Errorf("%s %s %s not implemented", b.Type(), op, other.Type())
}
