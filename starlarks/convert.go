package starlarks

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/reusee/exprs/values"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark boxes v so that + keeps its semantics inside scripts.
// Other payloads holding containers, functions, big integers or starlark
// values become plain starlark values.
func ToStarlark(v values.Value) starlark.Value {
	if other, ok := v.(values.Other); ok && unboxed(other.V) {
		if converted, err := goValue(other.V); err == nil {
			return converted
		}
	}
	if v == nil {
		v = values.Null{}
	}
	return Box{Value: v}
}

func unboxed(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case starlark.Value, *big.Int, []byte:
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Func:
		return true
	}
	return false
}

func FromStarlark(v starlark.Value) values.Value {
	switch v := v.(type) {
	case nil, starlark.NoneType:
		return values.Null{}
	case Box:
		if v.Value == nil {
			return values.Null{}
		}
		return v.Value
	case starlark.Bool:
		return values.Bool(v)
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return values.Int64(i)
		}
		return values.Other{V: v.BigInt()}
	case starlark.Float:
		return values.Float64(v)
	case starlark.String:
		return values.String(v)
	case starlark.Bytes:
		return values.Other{V: []byte(v)}
	}
	return values.Other{V: v}
}

// goValue converts native Go values to starlark values by reflection.
func goValue(v any) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case starlark.Value:
		return v, nil
	case []byte:
		return starlark.Bytes(v), nil
	case *big.Int:
		if v == nil {
			return starlark.None, nil
		}
		return starlark.MakeBigInt(v), nil
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool()), nil

	case reflect.String:
		return starlark.String(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float()), nil

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, 0, value.Len())
		for i := range value.Len() {
			elem, err := goValue(value.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return starlark.NewList(elems), nil

	case reflect.Map:
		dict := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			k, err := goValue(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			v, err := goValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(k, v); err != nil {
				return nil, err
			}
		}
		return dict, nil

	case reflect.Struct:
		typ := value.Type()
		dict := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			v, err := goValue(value.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(field.Name), v); err != nil {
				return nil, err
			}
		}
		return dict, nil

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None, nil
		}
		return goValue(value.Elem().Interface())

	case reflect.Func:
		if value.IsNil() {
			return starlark.None, nil
		}
		return starlarkutil.MakeFunc("", v), nil

	}

	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}
