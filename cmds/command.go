package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the parameters of a function command, for usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = append(c.ArgNames, names...)
	return c
}

func (c *Command) synopsis() string {
	if len(c.ArgNames) > 0 {
		return "<" + strings.Join(c.ArgNames, "> <") + ">"
	}
	if !c.Func.IsValid() {
		return ""
	}
	var parts []string
	fnType := c.Func.Type()
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		if t.Kind() == reflect.Pointer {
			parts = append(parts, "["+t.Elem().Name()+"]")
		} else {
			parts = append(parts, "<"+t.Name()+">")
		}
	}
	return strings.Join(parts, " ")
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	if fnType.NumOut() >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if fnType.NumOut() == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
