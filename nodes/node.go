package nodes

import (
	"context"

	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/values"
)

type Node interface {
	Evaluate(ctx context.Context, scope Context) (values.Value, error)
	Pos() Pos
}

type Literal struct {
	Value values.Value
	At    Pos
}

var _ Node = new(Literal)

func (l *Literal) Evaluate(ctx context.Context, scope Context) (values.Value, error) {
	if l.Value == nil {
		return values.Null{}, nil
	}
	return l.Value, nil
}

func (l *Literal) Pos() Pos {
	return l.At
}

// Var is a variable reference. Undefined names evaluate to null.
type Var struct {
	Name string
	At   Pos
}

var _ Node = new(Var)

func (v *Var) Evaluate(ctx context.Context, scope Context) (values.Value, error) {
	if scope == nil {
		return values.Null{}, nil
	}
	value, ok := scope.Lookup(v.Name)
	if !ok || value == nil {
		return values.Null{}, nil
	}
	return value, nil
}

func (v *Var) Pos() Pos {
	return v.At
}

type Add struct {
	Left  Node
	Right Node
	At    Pos
}

var _ Node = new(Add)

// Evaluate resolves both operands, left first, and applies the + operator.
// Errors from operand evaluation are returned as is.
func (a *Add) Evaluate(ctx context.Context, scope Context) (values.Value, error) {
	left, err := a.Left.Evaluate(ctx, scope)
	if err != nil {
		return nil, err
	}
	right, err := a.Right.Evaluate(ctx, scope)
	if err != nil {
		return nil, err
	}

	outcome, err := arith.Resolve(left, right)
	if err != nil {
		return nil, WithPos(err, a.At)
	}

	if observe, ok := ctx.Value(observerKey).(Observer); ok {
		observe(ctx, Observation{
			Node:    a,
			Left:    left,
			Right:   right,
			Outcome: outcome,
		})
	}

	return outcome.Value, nil
}

func (a *Add) Pos() Pos {
	return a.At
}
