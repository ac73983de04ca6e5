package logs

import (
	"context"
	"fmt"
)

// SpanError annotates an error with the span it happened in.
type SpanError struct {
	Err  error
	Span Span
}

func (s SpanError) Error() string {
	return fmt.Sprintf("%v (span: %s)", s.Err, s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return SpanError{
		Err:  err,
		Span: span,
	}
}
