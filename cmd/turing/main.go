package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/descriptions"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/printers"
	"github.com/reusee/turing/tmconfigs"
)

var (
	descriptionFile = cmds.Var[string]("-file", "machine description, .cue or .star")
	tapFlag         = cmds.Switch("-tap", "open a starlark REPL on the halted machine")
)

func init() {
	cmds.Group("input", "-file", "-tap")
}

const (
	exitAccepted = 0
	exitError    = 1
	exitStuck    = 2
	exitAborted  = 3
)

func main() {
	cmds.Execute(os.Args[1:])

	if *descriptionFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <machine.cue|machine.star> is required")
		os.Exit(exitError)
	}

	os.Exit(execute())
}

// recoverExit turns a panic, such as an invalid config file, into exitError.
func recoverExit(code *int, w io.Writer) {
	if p := recover(); p != nil {
		fmt.Fprintf(w, "Error: %v\n", p)
		*code = exitError
	}
}

func execute() (code int) {
	defer recoverExit(&code, os.Stderr)

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		load descriptions.LoadFunc,
		build machines.BuildFunc,
		width tmconfigs.StateWidth,
		quiet tmconfigs.Quiet,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "", "file", *descriptionFile)
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		result, m, err := run(
			*descriptionFile,
			load,
			build,
			printers.Printer{
				W:     out,
				Width: int(width),
			},
			bool(quiet),
		)
		if err != nil {
			out.Flush()
			err = logs.WrapSpan(ctx, err)
			logger.ErrorContext(ctx, "run failed", "error", err)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			code = exitError
			return
		}

		logger.InfoContext(ctx, "machine halted",
			"file", *descriptionFile,
			"outcome", result.Outcome,
			"steps", result.Steps,
			"state", result.State,
		)

		if *tapFlag {
			out.Flush()
			tap(ctx, *descriptionFile, m)
		}

		switch result.Outcome {
		case machines.Accepted:
			code = exitAccepted
		case machines.Stuck:
			code = exitStuck
		default:
			code = exitAborted
		}
	})

	return code
}

func run(
	path string,
	load descriptions.LoadFunc,
	build machines.BuildFunc,
	printer printers.Printer,
	quiet bool,
) (result machines.Result, m *machines.Machine, err error) {
	desc, err := load(path)
	if err != nil {
		return result, nil, err
	}
	m, err = build(desc)
	if err != nil {
		return result, nil, fmt.Errorf("build %s: %w", path, err)
	}

	if printer.Width <= 0 {
		printer.Width = printers.Width(m)
	}
	var printErr error
	result = m.Run(func(m *machines.Machine) {
		if quiet || printErr != nil {
			return
		}
		printErr = printer.PrintConfiguration(m)
	})
	if printErr != nil {
		return result, m, printErr
	}
	if err := printer.PrintResult(result); err != nil {
		return result, m, err
	}
	if f, ok := printer.W.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return result, m, err
		}
	}
	return result, m, nil
}
