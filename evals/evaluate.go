package evals

import (
	"context"

	"github.com/reusee/exprs/logs"
	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/parser"
	"github.com/reusee/exprs/values"
)

// Evaluate parses src and evaluates it against scope.
type Evaluate func(ctx context.Context, name string, src string, scope nodes.Context) (values.Value, error)

func (Module) Evaluate(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Evaluate {
	return func(ctx context.Context, name string, src string, scope nodes.Context) (values.Value, error) {
		ctx, _ = newSpan(ctx, "evaluate "+name)

		node, err := parser.Parse(name, src)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}

		ctx = nodes.WithObserver(ctx, func(ctx context.Context, obs nodes.Observation) {
			logger.DebugContext(ctx, "add",
				"pos", obs.Node.At.String(),
				"left", values.Format(obs.Left),
				"right", values.Format(obs.Right),
				"rule", obs.Outcome.Rule.String(),
				"path", obs.Outcome.Path.String(),
				"result", values.Format(obs.Outcome.Value),
			)
		})

		result, err := node.Evaluate(ctx, scope)
		if err != nil {
			logger.DebugContext(ctx, "evaluate failed", "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "evaluated",
			"result", values.Format(result),
		)
		return result, nil
	}
}
