package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int, s *string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("add", Func(func(a, b string) {}).Args("left", "right").Desc("ADD"))
	executor.PrintUsage()

	expected := strings.Join([]string{
		"-h, help, -help, --help\tprint this usage",
		"add <left> <right>\tADD",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux <int> [string]\tQUX",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}
