package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux\tQUX",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUsageGroups(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("-quiet", Func(func() {}).Desc("QUIET"))
	executor.Define("!-quiet", Func(func() {}).Desc("LOUD"))
	executor.Define("-log-debug", Func(func() {}).Desc("DEBUG"))
	executor.Define("-file", Func(func(string) {}).Desc("FILE"))
	executor.Define("-tap", Func(func() {}).Desc("TAP").InGroup("run"))
	executor.Group("run", "-quiet")
	executor.Group("logging", "-log-debug")
	executor.PrintUsage()

	want := "-file\tFILE\n" +
		"-h (help, -help, --help)\tprint this usage\n" +
		"\nlogging:\n" +
		"  -log-debug\tDEBUG\n" +
		"\nrun:\n" +
		"  !-quiet\tLOUD\n" +
		"  -quiet\tQUIET\n" +
		"  -tap\tTAP\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s", got)
	}
}
