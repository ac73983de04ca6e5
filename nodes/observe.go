package nodes

import (
	"context"

	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/values"
)

type Observation struct {
	Node    *Add
	Left    values.Value
	Right   values.Value
	Outcome arith.Outcome
}

// Observer is called after each successful addition.
type Observer func(ctx context.Context, obs Observation)

type observerKeyType struct{}

var observerKey observerKeyType

func WithObserver(ctx context.Context, observer Observer) context.Context {
	return context.WithValue(ctx, observerKey, observer)
}
