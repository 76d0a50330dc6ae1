package logs

import (
	"io"
	"os"

	"github.com/reusee/turing/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file", "append log records to this file")

// Writer appends to the -log-file path when given, stderr otherwise.
func (Module) Writer() Writer {
	if *logFile == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	return f
}
