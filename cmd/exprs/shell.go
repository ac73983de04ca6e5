package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/exprs/evals"
	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/starlarks"
	"github.com/reusee/exprs/vars"
	"golang.org/x/term"
)

func shell(ctx context.Context, scope dscope.Scope) (err error) {
	scope.Call(func(
		evaluate evals.Evaluate,
		bindings starlarks.Vars,
	) {
		eval := func(line string) {
			line = strings.TrimSpace(line)
			if line == "" {
				return
			}
			result, err := evaluate(ctx, "shell", line, nodes.Bindings(bindings))
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return
			}
			if err := printValue(result); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				eval(scanner.Text())
			}
			err = scanner.Err()
			return
		}

		var defaultHistoryFile string
		if home, err := os.UserHomeDir(); err == nil {
			defaultHistoryFile = filepath.Join(home, ".exprs_history")
		}
		rl, e := readline.NewEx(&readline.Config{
			Prompt:      "> ",
			HistoryFile: vars.FirstNonZero(*historyFile, defaultHistoryFile),
		})
		if e != nil {
			err = wrap(e)
			return
		}
		defer rl.Close()
		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				break
			}
			eval(line)
		}
	})
	return
}
