package starlarks

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/exprs/evals"
	"github.com/reusee/exprs/logs"
	"github.com/reusee/exprs/nodes"
)

type Module struct {
	dscope.Module
	Evals evals.Module
	Logs  logs.Module
}

// Vars are predeclared in every script and visible to eval.
type Vars nodes.Bindings

func (Module) Vars() Vars {
	return nil
}

// Output receives the output of print.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
