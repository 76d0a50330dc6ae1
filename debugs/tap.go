package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with the configuration of m as globals.
type Tap func(ctx context.Context, what string, m *machines.Machine)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, m *machines.Machine) {
		globals := MachineGlobals(m)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
