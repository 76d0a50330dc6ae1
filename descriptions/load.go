package descriptions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
)

// Load reads a description file, the format is chosen by extension: .cue or .star.
func Load(path string, logger logs.Logger) (machines.Description, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return machines.Description{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return LoadCUE(path, content)
	case ".star", ".starlark", ".bzl":
		return LoadStarlark(path, content, logger)
	}
	return machines.Description{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}
