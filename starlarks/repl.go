package starlarks

import (
	"context"

	"github.com/reusee/exprs/logs"
	"go.starlark.net/repl"
)

// REPL reads and evaluates statements from standard input until EOF.
type REPL func(ctx context.Context)

func (Module) REPL(
	predeclared Predeclared,
	output Output,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) {
		logger.InfoContext(ctx, "repl")
		defer func() {
			logger.InfoContext(ctx, "repl end")
		}()

		thread := newThread(ctx, "repl", output)
		repl.REPLOptions(fileOptions(), thread, predeclared.dict())
	}
}
