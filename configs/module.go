package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/exprs/logs"
)

// Schema constrains the configuration files of the exprs command.
//
//go:embed schema.cue
var Schema string

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Files are configuration files given explicitly, taking precedence over discovered ones.
type Files []string

func (Module) Files() Files {
	return nil
}

var fileNames = []string{
	"exprs.cue",
	".exprs.cue",
}

func (Module) Loader(
	logger logs.Logger,
	files Files,
) Loader {
	paths := append([]string(nil), files...)

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return NewLoader(paths, Schema)
}

func existing(dir string) (ret []string) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
