package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a typed literal: null, true, false, or kind:payload.
// Text without a known kind prefix is a String.
func Parse(text string) (Value, error) {
	switch text {
	case "null":
		return Null{}, nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}

	kind, payload, ok := strings.Cut(text, ":")
	if !ok {
		return String(text), nil
	}

	switch kind {
	case "null":
		if payload != "" {
			return nil, fmt.Errorf("null takes no payload: %q", text)
		}
		return Null{}, nil
	case "bool":
		b, err := strconv.ParseBool(payload)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Bool(b), nil
	case "int8":
		i, err := strconv.ParseInt(payload, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Int8(i), nil
	case "int16":
		i, err := strconv.ParseInt(payload, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Int16(i), nil
	case "int32":
		i, err := strconv.ParseInt(payload, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Int32(i), nil
	case "int64":
		i, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Int64(i), nil
	case "float32":
		f, err := strconv.ParseFloat(payload, 32)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Float32(f), nil
	case "float64":
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", text, err)
		}
		return Float64(f), nil
	case "string", "str":
		return String(payload), nil
	}

	return String(text), nil
}

// Arg adapts Parse to encoding.TextUnmarshaler, for command line arguments.
type Arg struct {
	Value
}

func (a *Arg) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	a.Value = v
	return nil
}
