package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/exprs/modes"
)

func TestNewSpan(t *testing.T) {
	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	defer SetLevel("info")

	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "outer")
		if SpanOf(ctx1) != span1 {
			t.Fatalf("got %v", SpanOf(ctx1))
		}

		ctx2, span2 := newSpan(ctx1, "inner")
		if SpanOf(ctx2) != span2 {
			t.Fatalf("got %v", SpanOf(ctx2))
		}
		if span1 == span2 {
			t.Fatal("span not unique")
		}

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "what=outer") {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("boom")

	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	var spanErr SpanError
	if !errors.As(err, &spanErr) {
		t.Fatalf("got %T", err)
	}
	if spanErr.Span != "foo" {
		t.Fatalf("got %v", spanErr.Span)
	}
	if err.Error() != "boom (span: foo)" {
		t.Fatalf("got %q", err.Error())
	}
}
