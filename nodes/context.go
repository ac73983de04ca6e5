package nodes

import "github.com/reusee/exprs/values"

// Context resolves variable names during evaluation.
type Context interface {
	Lookup(name string) (values.Value, bool)
}

type Bindings map[string]values.Value

var _ Context = Bindings(nil)

func (b Bindings) Lookup(name string) (values.Value, bool) {
	v, ok := b[name]
	return v, ok
}

// Chain looks names up in each context in order.
type Chain []Context

var _ Context = Chain(nil)

func (c Chain) Lookup(name string) (values.Value, bool) {
	for _, ctx := range c {
		if ctx == nil {
			continue
		}
		if v, ok := ctx.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}
