package descriptions

import (
	"fmt"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var starlarkFileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// LoadStarlark runs a script that must call the predeclared machine() function exactly once.
//
//	machine(
//	    states = ["q0", "q1"],
//	    accepting = ["q1"],
//	    alphabet = ["U", "a"],
//	    blank = "U",
//	    initial = "q0",
//	    tape = "a",
//	    transitions = [("q0", "a", "a", "R", "q1")],
//	)
func LoadStarlark(name string, src []byte, logger logs.Logger) (machines.Description, error) {
	var raw *rawDescription

	builtin := starlark.NewBuiltin("machine", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if raw != nil {
			return nil, fmt.Errorf("%s: called more than once", fn.Name())
		}
		var (
			states, accepting, alphabet starlark.Iterable
			transitions                 starlark.Iterable
			blank, initial, tape        string
		)
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"states", &states,
			"alphabet", &alphabet,
			"blank", &blank,
			"initial", &initial,
			"accepting?", &accepting,
			"tape?", &tape,
			"transitions?", &transitions,
		); err != nil {
			return nil, err
		}

		ret := rawDescription{
			Blank:   blank,
			Initial: initial,
			Tape:    tape,
		}
		var err error
		if ret.States, err = stringList(fn.Name()+": states", states); err != nil {
			return nil, err
		}
		if ret.Accepting, err = stringList(fn.Name()+": accepting", accepting); err != nil {
			return nil, err
		}
		if ret.Alphabet, err = stringList(fn.Name()+": alphabet", alphabet); err != nil {
			return nil, err
		}
		if transitions != nil {
			iter := transitions.Iterate()
			defer iter.Done()
			var elem starlark.Value
			for i := 0; iter.Next(&elem); i++ {
				what := fmt.Sprintf("%s: transitions[%d]", fn.Name(), i)
				tuple, ok := elem.(starlark.Iterable)
				if !ok {
					return nil, fmt.Errorf("%s: want a tuple, got %s", what, elem.Type())
				}
				fields, err := stringList(what, tuple)
				if err != nil {
					return nil, err
				}
				if len(fields) != 5 {
					return nil, fmt.Errorf("%s: want (state, read, write, move, next), got %d fields", what, len(fields))
				}
				ret.Transitions = append(ret.Transitions, rawRule{
					State: fields[0],
					Read:  fields[1],
					Write: fields[2],
					Move:  fields[3],
					Next:  fields[4],
				})
			}
		}

		raw = &ret
		return starlark.None, nil
	})

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info("starlark print", "file", name, "msg", msg)
		},
	}
	if _, err := starlark.ExecFileOptions(
		starlarkFileOptions,
		thread,
		name,
		src,
		starlark.StringDict{
			"machine": builtin,
		},
	); err != nil {
		return machines.Description{}, fmt.Errorf("%w: %s: %w", ErrInvalidDescription, name, err)
	}
	if raw == nil {
		return machines.Description{}, fmt.Errorf("%w: %s: machine() not called", ErrInvalidDescription, name)
	}

	return raw.toDescription()
}

func stringList(what string, v starlark.Iterable) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	var ret []string
	iter := v.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		s, ok := starlark.AsString(elem)
		if !ok {
			return nil, fmt.Errorf("%s: want string, got %s", what, elem.Type())
		}
		ret = append(ret, s)
	}
	return ret, nil
}
