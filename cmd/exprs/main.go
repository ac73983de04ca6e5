package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/exprs/arith"
	"github.com/reusee/exprs/cmds"
	"github.com/reusee/exprs/configs"
	"github.com/reusee/exprs/evals"
	"github.com/reusee/exprs/logs"
	"github.com/reusee/exprs/modes"
	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/starlarks"
	"github.com/reusee/exprs/values"
)

var (
	configFiles = cmds.Collect[string]("-config", "read a configuration file, may be repeated")
	textOutput  = cmds.Switch("-text", "print results as text instead of typed values")
	historyFile = cmds.Var[string]("-history", "history file of shell")
	cmdVars     = make(nodes.Bindings)
	action      func(ctx context.Context, scope dscope.Scope) error
)

func printValue(v values.Value) error {
	if !*textOutput {
		fmt.Println(values.Format(v))
		return nil
	}
	str, err := values.Text(v)
	if err != nil {
		return err
	}
	fmt.Println(str)
	return nil
}

var errMultipleActions = errors.New("only one of add, eval, run, repl or shell may be given")

func setAction(fn func(ctx context.Context, scope dscope.Scope) error) error {
	if action != nil {
		return errMultipleActions
	}
	action = fn
	return nil
}

func init() {
	cmds.Define("-var", cmds.Func(func(name string, value values.Arg) {
		cmdVars[name] = value.Value
	}).Args("name", "value").Desc("define a variable, value is null, true, false, kind:payload or text"))

	cmds.Define("add", cmds.Func(func(left values.Arg, right values.Arg) error {
		return setAction(func(ctx context.Context, scope dscope.Scope) error {
			result, err := arith.Add(left.Value, right.Value)
			if err != nil {
				return err
			}
			return printValue(result)
		})
	}).Args("value", "value").Desc("add two values"))

	cmds.Define("eval", cmds.Func(func(expr string) error {
		return setAction(func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				evaluate evals.Evaluate,
				vars starlarks.Vars,
			) {
				var result values.Value
				result, err = evaluate(ctx, "eval", expr, nodes.Bindings(vars))
				if err != nil {
					return
				}
				err = printValue(result)
			})
			return
		})
	}).Args("expr").Desc("evaluate an expression"))

	cmds.Define("run", cmds.Func(func(path string) error {
		return setAction(func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				exec starlarks.Exec,
			) {
				_, err = exec(ctx, path, nil)
			})
			return
		})
	}).Args("file.star").Desc("run a starlark script"))

	cmds.Define("repl", cmds.Func(func() error {
		return setAction(func(ctx context.Context, scope dscope.Scope) error {
			scope.Call(func(
				repl starlarks.REPL,
			) {
				repl(ctx)
			})
			return nil
		})
	}).Desc("starlark read-eval-print loop"))

	cmds.Define("shell", cmds.Func(func() error {
		return setAction(shell)
	}).Desc("evaluate expressions line by line"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		dscope.Provide(configs.Files(*configFiles)),
	)

	var err error
	scope.Call(func(
		loader configs.Loader,
		loadBindings evals.LoadBindings,
	) {
		var level string
		level, err = configs.First[string](loader, "log_level")
		if err != nil {
			return
		}
		if err = logs.SetDefaultLevel(level); err != nil {
			return
		}
		var bindings nodes.Bindings
		bindings, err = loadBindings("vars")
		if err != nil {
			return
		}
		for name, value := range cmdVars {
			bindings[name] = value
		}
		scope = scope.Fork(
			dscope.Provide(starlarks.Vars(bindings)),
		)
	})
	if err == nil {
		err = action(dscope.Get[context.Context](scope), scope)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
