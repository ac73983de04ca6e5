package starlarks

import (
	"context"
	"fmt"

	"github.com/reusee/exprs/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func fileOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
	}
}

func newThread(ctx context.Context, name string, output Output) *starlark.Thread {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
	}
	thread.SetLocal(contextKey, ctx)
	return thread
}

// Exec runs a script and returns its globals. src is as in starlark.ExecFile.
type Exec func(ctx context.Context, filename string, src any) (starlark.StringDict, error)

func (Module) Exec(
	predeclared Predeclared,
	output Output,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Exec {
	return func(ctx context.Context, filename string, src any) (starlark.StringDict, error) {
		ctx, _ = newSpan(ctx, "exec "+filename)

		thread := newThread(ctx, filename, output)
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		globals, err := starlark.ExecFileOptions(fileOptions(), thread, filename, src, predeclared.dict())
		if err != nil {
			if evalErr, ok := err.(*starlark.EvalError); ok {
				logger.DebugContext(ctx, "exec failed",
					"backtrace", evalErr.Backtrace(),
				)
			}
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "exec done",
			"globals", len(globals),
		)
		return globals, nil
	}
}
