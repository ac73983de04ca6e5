package evals

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/configs"
	"github.com/reusee/exprs/logs"
	"github.com/reusee/exprs/modes"
	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/parser"
	"github.com/reusee/exprs/values"
)

func testScope(t *testing.T, buf *bytes.Buffer) dscope.Scope {
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return buf
		},
		func() configs.Files {
			return configs.Files{"testdata/vars.cue"}
		},
	)
}

func TestEvaluate(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, buf).Call(func(
		evaluate Evaluate,
		loadBindings LoadBindings,
	) {
		bindings, err := loadBindings("vars")
		if err != nil {
			t.Fatal(err)
		}

		cases := []struct {
			src      string
			expected values.Value
		}{
			{"1 + 2", values.Int8(3)},
			{"x + y", values.Int16(200)},
			{"ratio + 1", values.Float64(2.5)},
			{"name + 1", values.String("foo1")},
			{"undefined + undefined", values.Int8(0)},
			{"'a' + (x + 1)", values.String("a101")},
			{"null", values.Null{}},
		}
		for _, c := range cases {
			got, err := evaluate(context.Background(), "test", c.src, bindings)
			if err != nil {
				t.Fatalf("%s: %v", c.src, err)
			}
			if !values.Equal(got, c.expected) {
				t.Fatalf("%s: got %s, expected %s", c.src, values.Format(got), values.Format(c.expected))
			}
		}
	})
}

func TestEvaluateLogs(t *testing.T) {
	if err := logs.SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	defer logs.SetLevel("info")

	buf := new(bytes.Buffer)
	testScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		_, err := evaluate(context.Background(), "test", "1 + 2.5", nil)
		if err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{
			"msg=\"new span\"",
			"msg=add",
			"rule=floating",
			"result=float64(3.5)",
			"logs.span=",
		} {
			if !strings.Contains(out, want) {
				t.Fatalf("%q not in %q", want, out)
			}
		}
	})
}

func TestEvaluateErrors(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, buf).Call(func(
		evaluate Evaluate,
	) {
		_, err := evaluate(context.Background(), "test", "1 +", nil)
		if !errors.Is(err, parser.ErrSyntax) {
			t.Fatalf("got %v", err)
		}
		var spanErr logs.SpanError
		if !errors.As(err, &spanErr) {
			t.Fatalf("got %T", err)
		}

		scope := nodes.Bindings{
			"o": values.Other{V: struct{}{}},
		}
		_, err = evaluate(context.Background(), "test", "o + 1", scope)
		var strErr *arith.StringificationError
		if !errors.As(err, &strErr) {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(err, values.ErrNoText) {
			t.Fatalf("got %v", err)
		}
		var posErr nodes.PosError
		if !errors.As(err, &posErr) {
			t.Fatalf("got %T", err)
		}
		if posErr.Pos.Column != 3 {
			t.Fatalf("got %v", posErr.Pos)
		}
	})
}

func TestLoadBindingsMissing(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, buf).Call(func(
		loadBindings LoadBindings,
	) {
		bindings, err := loadBindings("nothing")
		if err != nil {
			t.Fatal(err)
		}
		if len(bindings) != 0 {
			t.Fatalf("got %v", bindings)
		}
	})
}
