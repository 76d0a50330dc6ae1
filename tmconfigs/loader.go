package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
)

//go:embed schema.cue
var Schema string

var configFile = cmds.Var[string]("-config", "config file, skips discovery")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if *configFile != "" {
		paths = append(paths, *configFile)
		return configs.NewLoader(paths, Schema)
	}

	// tests must not pick up files of the host
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, Schema)
	}

	filenames := []string{
		"turing.cue",
		".turing.cue",
	}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		paths = appendExisting(paths, workingDir, filenames)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = appendExisting(paths, configDir, filenames)
	}

	// system wide dir
	paths = appendExisting(paths, "/etc", filenames)

	return configs.NewLoader(paths, Schema)
}

func appendExisting(paths []string, dir string, filenames []string) []string {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}
