package logs

import "context"

// Span identifies one unit of work, usually one evaluation.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}
