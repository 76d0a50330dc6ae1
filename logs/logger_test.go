package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("machine halted", "outcome", "accepted", "steps", 13)
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("machine", "anbn").InfoContext(ctx, "run")
	})
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "outcome=accepted steps=13") {
		t.Fatalf("got %v", lines[0])
	}
	if !strings.Contains(lines[1], "machine=anbn span=foo") {
		t.Fatalf("got %v", lines[1])
	}
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("max_steps.v2"); key != "MAX_STEPS_V2" {
		t.Fatalf("got %s", key)
	}
}

func TestWrapSpan(t *testing.T) {
	err := errors.New("boom")
	if got := WrapSpan(context.Background(), err); got != err {
		t.Fatalf("got %v", got)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
	got := WrapSpan(ctx, err)
	if !errors.Is(got, err) {
		t.Fatal()
	}
	if !strings.Contains(got.Error(), "span: foo") {
		t.Fatalf("got %v", got)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
