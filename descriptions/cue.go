package descriptions

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/machines"
)

//go:embed schema.cue
var Schema string

// LoadCUE decodes a description validated against Schema.
func LoadCUE(name string, src []byte) (machines.Description, error) {
	loader := configs.NewSourceLoader(name, src, Schema)

	var raw rawDescription
	for _, field := range []struct {
		path     string
		target   any
		required bool
	}{
		{"states", &raw.States, true},
		{"accepting", &raw.Accepting, false},
		{"alphabet", &raw.Alphabet, true},
		{"blank", &raw.Blank, true},
		{"initial", &raw.Initial, true},
		{"tape", &raw.Tape, false},
		{"transitions", &raw.Transitions, false},
	} {
		err := loader.AssignFirst(field.path, field.target)
		if errors.Is(err, configs.ErrValueNotFound) {
			if field.required {
				return machines.Description{}, fmt.Errorf("%w: %s: missing %s", ErrInvalidDescription, name, field.path)
			}
			continue
		}
		if err != nil {
			return machines.Description{}, fmt.Errorf("%w: %s: %w", ErrInvalidDescription, name, err)
		}
	}

	return raw.toDescription()
}
