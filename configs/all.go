package configs

import "iter"

// All decodes the value at path of every file defining it, in file order.
func All[T any](loader Loader, path string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for value, err := range loader.IterCueValues(path) {
			var v T
			if err == nil {
				err = value.Decode(&v)
			}
			if !yield(v, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
