package descriptions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type LoadFunc func(path string) (machines.Description, error)

func (Module) Load(
	logger logs.Logger,
) LoadFunc {
	return func(path string) (machines.Description, error) {
		desc, err := Load(path, logger)
		if err != nil {
			return desc, err
		}
		logger.Debug("description loaded",
			"path", path,
			"states", len(desc.States),
			"symbols", len(desc.Alphabet),
			"transitions", len(desc.Transitions),
		)
		return desc, nil
	}
}
