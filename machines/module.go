package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs tmconfigs.Module
	Logs    logs.Module
}

// BuildFunc builds machines with the configured step ceiling and duplicate policy.
type BuildFunc func(desc Description) (*Machine, error)

func (Module) Build(
	maxSteps tmconfigs.MaxSteps,
	strict tmconfigs.Strict,
	logger logs.Logger,
) BuildFunc {
	return func(desc Description) (*Machine, error) {
		opts := []Option{
			WithLogger(logger),
		}
		if maxSteps > 0 {
			opts = append(opts, WithMaxSteps(int(maxSteps)))
		}
		if strict {
			opts = append(opts, WithStrict())
		}
		return Build(desc, opts...)
	}
}
