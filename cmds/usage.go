package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p.Output, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		line := indent + name
		if len(command.Aliases) > 0 {
			line += ", " + strings.Join(command.Aliases, ", ")
		}
		if synopsis := command.synopsis(); synopsis != "" {
			line += " " + synopsis
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
