package tmconfigs

import (
	"fmt"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

// MaxSteps is the step ceiling of a run. Zero means the machine default.
type MaxSteps int

var maxStepsFlag int

func init() {
	cmds.Define("-max-steps", cmds.Func(func(n int) error {
		if n <= 0 {
			return fmt.Errorf("-max-steps: must be positive, got %d", n)
		}
		maxStepsFlag = n
		return nil
	}).Desc("abort after this many steps"))
	cmds.Group("run", "-config", "-max-steps", "-strict", "-width", "-quiet")
}

// MaxSteps takes the smallest ceiling among the flag and every config file.
func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	var ret int
	lower := func(n int) {
		if n > 0 && (ret == 0 || n < ret) {
			ret = n
		}
	}

	// flag
	lower(maxStepsFlag)

	// config
	for n := range configs.All[int](loader, "max_steps") {
		lower(n)
	}

	return MaxSteps(ret)
}

// Strict rejects duplicated (state, symbol) transitions instead of keeping the last one.
type Strict bool

var strictFlag = cmds.Switch("-strict", "reject duplicated transitions")

func (Module) Strict(
	loader configs.Loader,
) Strict {
	return Strict(*strictFlag || vars.DerefOrZero(configs.First[*bool](loader, "strict")))
}

// StateWidth is the width of the state name column. Zero means the longest state name.
type StateWidth int

var stateWidthFlag = cmds.Var[int]("-width", "width of the state column")

func (Module) StateWidth(
	loader configs.Loader,
) StateWidth {
	return StateWidth(vars.FirstNonZero(
		*stateWidthFlag,
		configs.First[int](loader, "state_width"),
	))
}

// Quiet suppresses configuration lines, only the outcome is printed.
type Quiet bool

var quietFlag = cmds.Switch("-quiet", "print the outcome only")

func (Module) Quiet(
	loader configs.Loader,
) Quiet {
	return Quiet(*quietFlag || vars.DerefOrZero(configs.First[*bool](loader, "quiet")))
}
