package values

import (
	"errors"
	"math"
	"net/netip"
	"net/url"
	"testing"
)

type stringer struct{}

func (stringer) String() string { return "stringer!" }

type panicStringer struct{}

func (panicStringer) String() string { panic("no") }

func TestText(t *testing.T) {
	tests := []struct {
		value Value
		text  string
	}{
		{Null{}, "null"},
		{Bool(true), "true"},
		{Int8(-128), "-128"},
		{Int16(300), "300"},
		{Int32(70000), "70000"},
		{Int64(4000000000), "4000000000"},
		{Float64(7), "7.0"},
		{Float64(3.5), "3.5"},
		{Float64(-0.25), "-0.25"},
		{Float64(0.001), "0.001"},
		{Float64(1234567.5), "1234567.5"},
		{Float64(1e7), "1.0E7"},
		{Float64(1.5e-5), "1.5E-5"},
		{Float64(-2.5e300), "-2.5E300"},
		{Float64(0), "0.0"},
		{Float64(math.Copysign(0, -1)), "-0.0"},
		{Float64(math.NaN()), "NaN"},
		{Float64(math.Inf(1)), "Infinity"},
		{Float64(math.Inf(-1)), "-Infinity"},
		{Float32(0.1), "0.1"},
		{Float32(1e10), "1.0E10"},
		{String("abc"), "abc"},
		{Other{V: stringer{}}, "stringer!"},
		{Other{V: netip.MustParseAddr("10.0.0.1")}, "10.0.0.1"},
		{Other{V: errors.New("boom")}, "boom"},
		{Other{V: uint(7)}, "7"},
	}
	for _, test := range tests {
		got, err := Text(test.value)
		if err != nil {
			t.Fatalf("%s: %v", Format(test.value), err)
		}
		if got != test.text {
			t.Fatalf("%s: got %q, want %q", Format(test.value), got, test.text)
		}
	}
}

func TestTextFailure(t *testing.T) {
	for _, v := range []any{
		nil,
		struct{ A int }{1},
		func() {},
		[]int{1},
		make(chan int),
		(*url.URL)(nil),
		(*stringer)(nil),
		panicStringer{},
	} {
		_, err := Text(Other{V: v})
		if !errors.Is(err, ErrNoText) {
			t.Fatalf("%T: got %v", v, err)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value Value
		str   string
	}{
		{Null{}, "null"},
		{nil, "null"},
		{Bool(false), "false"},
		{Int8(5), "int8(5)"},
		{Int64(-1), "int64(-1)"},
		{Float64(7), "float64(7.0)"},
		{String("a\"b"), `"a\"b"`},
		{Other{V: stringer{}}, "other(values.stringer stringer!)"},
		{Other{V: []int{1}}, "other([]int)"},
		{Other{V: (*url.URL)(nil)}, "other(*url.URL)"},
	}
	for _, test := range tests {
		if got := Format(test.value); got != test.str {
			t.Fatalf("got %q, want %q", got, test.str)
		}
	}
}
