package vars

import "testing"

func TestStrToBool(t *testing.T) {
	cases := []struct {
		str   string
		value bool
		ok    bool
	}{
		{"true", true, true},
		{"Y", true, true},
		{" on ", true, true},
		{"1", true, true},
		{"no", false, true},
		{"OFF", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		value, ok := StrToBool(c.str)
		if value != c.value || ok != c.ok {
			t.Fatalf("%q: got %v %v", c.str, value, ok)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %v", got)
	}
}
