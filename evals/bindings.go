package evals

import (
	"github.com/reusee/exprs/configs"
	"github.com/reusee/exprs/nodes"
)

// LoadBindings reads the variables defined at path in the configuration files.
type LoadBindings func(path string) (nodes.Bindings, error)

func (Module) LoadBindings(
	loader configs.Loader,
) LoadBindings {
	return func(path string) (nodes.Bindings, error) {
		vars, err := configs.Values(loader, path)
		if err != nil {
			return nil, err
		}
		return nodes.Bindings(vars), nil
	}
}
