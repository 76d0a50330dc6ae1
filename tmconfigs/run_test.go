package tmconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/modes"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		maxSteps MaxSteps,
		strict Strict,
		width StateWidth,
		quiet Quiet,
	) {
		if maxSteps != 0 {
			t.Fatalf("got %v", maxSteps)
		}
		if strict {
			t.Fatal()
		}
		if width != 0 {
			t.Fatalf("got %v", width)
		}
		if quiet {
			t.Fatal()
		}
	})
}

func TestFromConfigFiles(t *testing.T) {
	local := writeConfig(t, "turing.cue", `
max_steps: 500
strict: true
state_width: 6
`)
	global := writeConfig(t, "turing.cue", `
max_steps: 200
quiet: true
`)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{local, global}, Schema)
		},
	).Call(func(
		maxSteps MaxSteps,
		strict Strict,
		width StateWidth,
		quiet Quiet,
	) {
		if maxSteps != 200 {
			t.Fatalf("got %v", maxSteps)
		}
		if !strict {
			t.Fatal()
		}
		if width != 6 {
			t.Fatalf("got %v", width)
		}
		if !quiet {
			t.Fatal()
		}
	})
}

func TestSchemaRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "turing.cue", `
max_steps: 0
`)
	loader := configs.NewLoader([]string{path}, Schema)
	var n int
	if err := loader.AssignFirst("max_steps", &n); err == nil {
		t.Fatal("should error")
	}
}

func TestMaxStepsFlag(t *testing.T) {
	defer func() {
		maxStepsFlag = 0
	}()
	for _, args := range [][]string{
		{"-max-steps", "0"},
		{"-max-steps", "-5"},
		{"-max-steps=0"},
	} {
		if err := cmds.GlobalExecutor.Execute(args); err == nil {
			t.Fatalf("%v should error", args)
		}
	}
	if maxStepsFlag != 0 {
		t.Fatalf("got %v", maxStepsFlag)
	}
	if err := cmds.GlobalExecutor.Execute([]string{"-max-steps", "30"}); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		maxSteps MaxSteps,
	) {
		if maxSteps != 30 {
			t.Fatalf("got %v", maxSteps)
		}
	})
}
