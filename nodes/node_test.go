package nodes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/values"
)

type failNode struct {
	err error
}

func (f failNode) Evaluate(ctx context.Context, scope Context) (values.Value, error) {
	return nil, f.err
}

func (f failNode) Pos() Pos {
	return Pos{}
}

type countNode struct {
	n *int
	v values.Value
}

func (c countNode) Evaluate(ctx context.Context, scope Context) (values.Value, error) {
	*c.n++
	return c.v, nil
}

func (c countNode) Pos() Pos {
	return Pos{}
}

func lit(v values.Value) Node {
	return &Literal{Value: v}
}

func TestAddNode(t *testing.T) {
	scope := Bindings{
		"a": values.Int32(2_000_000_000),
		"s": values.String("4.0"),
	}

	tests := []struct {
		node   Node
		expect values.Value
	}{
		{&Add{Left: lit(values.Int8(1)), Right: lit(values.Int8(2))}, values.Int8(3)},
		{&Add{Left: &Var{Name: "a"}, Right: &Var{Name: "a"}}, values.Int64(4_000_000_000)},
		{&Add{Left: lit(values.String("3")), Right: &Var{Name: "s"}}, values.Float64(7)},
		{&Add{Left: &Var{Name: "undefined"}, Right: &Var{Name: "undefined"}}, values.Int8(0)},
		{&Add{Left: &Var{Name: "undefined"}, Right: lit(values.Int32(5))}, values.Int8(5)},
		{&Add{Left: lit(nil), Right: lit(nil)}, values.Int8(0)},
		{
			&Add{
				Left:  &Add{Left: lit(values.Int8(1)), Right: lit(values.Int8(2))},
				Right: lit(values.String("x")),
			},
			values.String("3x"),
		},
		{
			&Add{
				Left:  lit(values.String("x")),
				Right: &Add{Left: lit(values.Int8(1)), Right: lit(values.Int8(2))},
			},
			values.String("x3"),
		},
	}

	for _, test := range tests {
		got, err := test.node.Evaluate(context.Background(), scope)
		if err != nil {
			t.Fatal(err)
		}
		if !values.Equal(got, test.expect) {
			t.Fatalf("%s: got %s", String(test.node), values.Format(got))
		}
	}
}

func TestAddNodeChildError(t *testing.T) {
	childErr := errors.New("child failed")

	var n int
	node := &Add{
		Left:  failNode{err: childErr},
		Right: countNode{n: &n, v: values.Int8(1)},
	}
	_, err := node.Evaluate(context.Background(), nil)
	if err != childErr {
		t.Fatalf("got %v", err)
	}
	if n != 0 {
		t.Fatal("right operand should not be evaluated after a left failure")
	}

	node = &Add{
		Left:  countNode{n: &n, v: values.Int8(1)},
		Right: failNode{err: childErr},
	}
	_, err = node.Evaluate(context.Background(), nil)
	if err != childErr {
		t.Fatalf("got %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d", n)
	}
}

func TestAddNodeStringificationError(t *testing.T) {
	source := NewSource("test", "x + 1")
	node := &Add{
		Left:  lit(values.Other{V: struct{}{}}),
		Right: lit(values.Int8(1)),
		At:    Pos{Source: source, Line: 1, Column: 3},
	}
	_, err := node.Evaluate(context.Background(), nil)
	var stringErr *arith.StringificationError
	if !errors.As(err, &stringErr) {
		t.Fatalf("got %v", err)
	}
	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "test:1:3\nx + 1\n  ^") {
		t.Fatalf("got %q", err.Error())
	}
}

func TestObserver(t *testing.T) {
	var observed []Observation
	ctx := WithObserver(context.Background(), func(ctx context.Context, obs Observation) {
		observed = append(observed, obs)
	})
	node := &Add{
		Left:  &Add{Left: lit(values.String("a")), Right: lit(values.Int8(1))},
		Right: lit(values.Float64(0.5)),
	}
	got, err := node.Evaluate(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != values.String("a10.5") {
		t.Fatalf("got %s", values.Format(got))
	}
	if len(observed) != 2 {
		t.Fatalf("got %d", len(observed))
	}
	if observed[0].Outcome.Rule != arith.RuleConcat {
		t.Fatalf("got %v", observed[0].Outcome.Rule)
	}
	if observed[1].Outcome.Path != arith.Floating || observed[1].Outcome.Rule != arith.RuleConcat {
		t.Fatalf("got %+v", observed[1].Outcome)
	}
	if observed[1].Node != node {
		t.Fatal()
	}
}

func TestChain(t *testing.T) {
	chain := Chain{
		nil,
		Bindings{"a": values.Int8(1)},
		Bindings{"a": values.Int8(2), "b": values.Int8(3)},
	}
	if v, ok := chain.Lookup("a"); !ok || v != values.Int8(1) {
		t.Fatalf("got %v", v)
	}
	if v, ok := chain.Lookup("b"); !ok || v != values.Int8(3) {
		t.Fatalf("got %v", v)
	}
	if _, ok := chain.Lookup("c"); ok {
		t.Fatal()
	}
}

func TestString(t *testing.T) {
	node := &Add{
		Left: &Add{
			Left:  &Var{Name: "a"},
			Right: lit(values.String("x\n")),
		},
		Right: &Add{
			Left:  lit(values.Float64(1.5)),
			Right: lit(nil),
		},
	}
	if got := String(node); got != `a + "x\n" + (1.5 + null)` {
		t.Fatalf("got %s", got)
	}
}
