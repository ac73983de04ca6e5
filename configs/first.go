package configs

import (
	"errors"
)

// First decodes the value at path of the first file defining it.
// A path defined nowhere yields the zero value.
func First[T any](loader Loader, path string) (ret T, err error) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return ret, nil
		}
		return ret, err
	}
	return ret, nil
}
