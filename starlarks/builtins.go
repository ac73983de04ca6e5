package starlarks

import (
	"context"
	"fmt"
	"maps"

	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/evals"
	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/values"
	"go.starlark.net/starlark"
)

// Predeclared holds the names every script starts with.
type Predeclared starlark.StringDict

const contextKey = "context"

func threadContext(thread *starlark.Thread) context.Context {
	if ctx, ok := thread.Local(contextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func (Module) Predeclared(
	evaluate evals.Evaluate,
	vars Vars,
) Predeclared {
	ret := Predeclared{
		"null":   Box{Value: values.Null{}},
		"text":   starlark.NewBuiltin("text", text),
		"add":    starlark.NewBuiltin("add", add),
		"kind":   starlark.NewBuiltin("kind", kind),
		"native": starlark.NewBuiltin("native", native),
	}
	for _, k := range []values.Kind{
		values.KindInt8,
		values.KindInt16,
		values.KindInt32,
		values.KindInt64,
		values.KindFloat32,
		values.KindFloat64,
	} {
		ret[k.String()] = starlark.NewBuiltin(k.String(), convert(k))
	}

	for name, value := range vars {
		ret[name] = ToStarlark(value)
	}

	ret["eval"] = starlark.NewBuiltin("eval", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, nil, 1, &src); err != nil {
			return nil, err
		}
		bindings := make(nodes.Bindings, len(kwargs))
		for _, kv := range kwargs {
			bindings[string(kv[0].(starlark.String))] = FromStarlark(kv[1])
		}
		result, err := evaluate(
			threadContext(thread),
			thread.Name,
			src,
			nodes.Chain{bindings, nodes.Bindings(vars)},
		)
		if err != nil {
			return nil, err
		}
		return Box{Value: result}, nil
	})

	return ret
}

func (p Predeclared) dict() starlark.StringDict {
	return maps.Clone(starlark.StringDict(p))
}

func unpackOne(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (values.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	return FromStarlark(v), nil
}

// convert builds a constructor for kind from the canonical text of its argument.
func convert(kind values.Kind) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		v, err := unpackOne(fn, args, kwargs)
		if err != nil {
			return nil, err
		}
		if v.Kind() == kind {
			return Box{Value: v}, nil
		}
		str, err := values.Text(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		result, err := values.Parse(kind.String() + ":" + str)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		return Box{Value: result}, nil
	}
}

func text(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := unpackOne(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	str, err := values.Text(v)
	if err != nil {
		return nil, err
	}
	return starlark.String(str), nil
}

func add(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var left, right starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &left, &right); err != nil {
		return nil, err
	}
	result, err := arith.Add(FromStarlark(left), FromStarlark(right))
	if err != nil {
		return nil, err
	}
	return Box{Value: result}, nil
}

func kind(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := unpackOne(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(v.Kind().String()), nil
}

func native(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	v, err := unpackOne(fn, args, kwargs)
	if err != nil {
		return nil, err
	}
	return goValue(values.Native(v))
}
