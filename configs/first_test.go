package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, Schema)

	level, err := First[string](loader, "log_level")
	if err != nil {
		t.Fatal(err)
	}
	if level != "warn" {
		t.Fatalf("got %v", level)
	}

	missing, err := First[string](loader, "vars.missing")
	if err != nil {
		t.Fatal(err)
	}
	if missing != "" {
		t.Fatalf("got %v", missing)
	}

	if _, err := First[int](loader, "log_level"); err == nil {
		t.Fatal("should fail")
	}

}
