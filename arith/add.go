package arith

import (
	"fmt"

	"github.com/reusee/exprs/values"
)

// Rule names the branch of the addition algorithm that produced a result.
type Rule uint8

const (
	RuleNullPair Rule = iota + 1
	RuleFloating
	RuleIntegral
	RuleConcat
)

func (r Rule) String() string {
	switch r {
	case RuleNullPair:
		return "null-pair"
	case RuleFloating:
		return "floating"
	case RuleIntegral:
		return "integral"
	case RuleConcat:
		return "concat"
	}
	return "invalid"
}

type Outcome struct {
	Value values.Value
	Path  Path
	Rule  Rule
}

// StringificationError is returned when the concatenation fallback cannot
// render an operand as text.
type StringificationError struct {
	Operand values.Value
	Err     error
}

func (s *StringificationError) Error() string {
	return fmt.Sprintf("cannot concatenate %s: %v", values.Format(s.Operand), s.Err)
}

func (s *StringificationError) Unwrap() error {
	return s.Err
}

// Add applies the + operator to two evaluated operands.
func Add(left, right values.Value) (values.Value, error) {
	outcome, err := Resolve(left, right)
	if err != nil {
		return nil, err
	}
	return outcome.Value, nil
}

// Resolve is Add, also reporting which rule produced the value.
func Resolve(left, right values.Value) (Outcome, error) {
	// null + null is zero, before any coercion rule applies
	if values.IsNull(left) && values.IsNull(right) {
		return Outcome{
			Value: Narrow(0),
			Path:  Integral,
			Rule:  RuleNullPair,
		}, nil
	}

	path := Classify(left, right)

	switch path {

	case Floating:
		l, lerr := ToFloat(left)
		r, rerr := ToFloat(right)
		if lerr == nil && rerr == nil {
			return Outcome{
				Value: values.Float64(l + r),
				Path:  path,
				Rule:  RuleFloating,
			}, nil
		}

	case Integral:
		l, lerr := ToInteger(left)
		r, rerr := ToInteger(right)
		if lerr == nil && rerr == nil {
			return Outcome{
				Value: Narrow(l + r),
				Path:  path,
				Rule:  RuleIntegral,
			}, nil
		}

	}

	s, err := Concat(left, right)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Value: s,
		Path:  path,
		Rule:  RuleConcat,
	}, nil
}

// Concat joins the canonical texts of left and right.
func Concat(left, right values.Value) (values.String, error) {
	l, err := values.Text(left)
	if err != nil {
		return "", &StringificationError{
			Operand: left,
			Err:     err,
		}
	}
	r, err := values.Text(right)
	if err != nil {
		return "", &StringificationError{
			Operand: right,
			Err:     err,
		}
	}
	return values.String(l + r), nil
}
