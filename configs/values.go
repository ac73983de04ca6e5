package configs

import (
	"fmt"
	"math"
	"strconv"

	"cuelang.org/go/cue"
	"github.com/reusee/exprs/values"
)

// Values reads the struct at path of every file into runtime values.
// A name defined in several files takes the value of the first one.
func Values(loader Loader, path string) (map[string]values.Value, error) {
	ret := make(map[string]values.Value)
	for value, err := range loader.IterCueValues(path) {
		if err != nil {
			return nil, err
		}
		iter, err := value.Fields()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for iter.Next() {
			name := iter.Label()
			if _, ok := ret[name]; ok {
				continue
			}
			v, err := toValue(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", path, name, err)
			}
			ret[name] = v
		}
	}
	return ret, nil
}

func toValue(value cue.Value) (values.Value, error) {
	switch value.Kind() {

	case cue.NullKind:
		return values.Null{}, nil

	case cue.BoolKind:
		b, err := value.Bool()
		if err != nil {
			return nil, err
		}
		return values.Bool(b), nil

	case cue.IntKind:
		i, err := value.Int64()
		if err != nil {
			return nil, err
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return values.Int32(i), nil
		}
		return values.Int64(i), nil

	case cue.FloatKind:
		f, err := value.Float64()
		if err != nil {
			return nil, err
		}
		return values.Float64(f), nil

	case cue.StringKind:
		s, err := value.String()
		if err != nil {
			return nil, err
		}
		return values.String(s), nil

	case cue.StructKind:
		kind := value.LookupPath(cue.ParsePath("kind"))
		payload := value.LookupPath(cue.ParsePath("value"))
		if kind.Exists() && payload.Exists() {
			return explicitValue(kind, payload)
		}

	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}
	var v any
	if err := value.Decode(&v); err != nil {
		return nil, err
	}
	return values.Other{V: v}, nil
}

// explicitValue handles {kind: "int8", value: 5}
func explicitValue(kind cue.Value, payload cue.Value) (values.Value, error) {
	kindName, err := kind.String()
	if err != nil {
		return nil, err
	}
	switch kindName {
	case "null", "bool", "int8", "int16", "int32", "int64", "float32", "float64", "string", "str":
	default:
		return nil, fmt.Errorf("unknown kind %q", kindName)
	}
	var text string
	switch payload.Kind() {
	case cue.NullKind:
		text = "null"
	case cue.BoolKind:
		b, err := payload.Bool()
		if err != nil {
			return nil, err
		}
		text = strconv.FormatBool(b)
	case cue.IntKind:
		i, err := payload.Int64()
		if err != nil {
			return nil, err
		}
		text = strconv.FormatInt(i, 10)
	case cue.FloatKind:
		f, err := payload.Float64()
		if err != nil {
			return nil, err
		}
		text = strconv.FormatFloat(f, 'g', -1, 64)
	case cue.StringKind:
		text, err = payload.String()
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported payload kind %v", payload.Kind())
	}
	if kindName == "null" {
		return values.Null{}, nil
	}
	return values.Parse(kindName + ":" + text)
}
