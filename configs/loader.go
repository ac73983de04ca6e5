package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily, once, validating each against a closed schema.
type Loader struct {
	getFiles func() ([]file, error)
}

type file struct {
	value cue.Value
	path  string
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		getFiles: sync.OnceValues(func() ([]file, error) {
			return load(paths, schemaSrc)
		}),
	}
}

func load(paths []string, schemaSrc string) (ret []file, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		value := ctx.CompileBytes(content, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, err
		}

		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, err
			}
		}

		ret = append(ret, file{
			value: value,
			path:  path,
		})
	}

	return ret, nil
}

// Lookup yields the value at path of every file defining it, with the file path.
func (l Loader) Lookup(path string) iter.Seq2[string, cue.Value] {
	return func(yield func(string, cue.Value) bool) {
		files, err := l.getFiles()
		if err != nil {
			return
		}
		cuePath := cue.ParsePath(path)
		for _, f := range files {
			value := f.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(f.path, value) {
				return
			}
		}
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		if _, err := l.getFiles(); err != nil {
			yield(nil, err)
			return
		}
		for _, value := range l.Lookup(path) {
			if !yield(&value, nil) {
				return
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	if _, err := l.getFiles(); err != nil {
		return err
	}
	for filePath, value := range l.Lookup(path) {
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %s: %w", filePath, path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
