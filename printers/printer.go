package printers

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/reusee/turing/machines"
)

// Width returns the length of the longest state name of m.
func Width(m *machines.Machine) int {
	width := 0
	for _, name := range m.States().All() {
		width = max(width, utf8.RuneCountInString(name))
	}
	return width
}

// Configuration renders the state name left-padded to width, then the tape from the left
// boundary to the right boundary with the head cell bracketed, e.g. "q1  a [U]".
func Configuration(m *machines.Machine, width int) string {
	var b strings.Builder
	name := m.StateName()
	if pad := width - utf8.RuneCountInString(name); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(name)
	b.WriteByte(' ')
	tape := m.Tape()
	head := tape.Head()
	last := tape.RightBoundary()
	for id, sym := range tape.Cells() {
		switch {
		case id == head:
			b.WriteByte('[')
			b.WriteRune(m.SymbolOf(sym))
			b.WriteByte(']')
		case id == last:
			// no padding after the last cell, a blank may be a space
			b.WriteByte(' ')
			b.WriteRune(m.SymbolOf(sym))
		default:
			b.WriteByte(' ')
			b.WriteRune(m.SymbolOf(sym))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func Outcome(r machines.Result) string {
	switch r.Outcome {
	case machines.Accepted:
		return "ACCEPTED"
	case machines.Stuck:
		return fmt.Sprintf("STUCK: no transition for state %s reading %q", r.State, r.Read)
	case machines.Aborted:
		return fmt.Sprintf("ABORTED: reached the maximum of %d steps", r.MaxSteps)
	}
	return strings.ToUpper(r.Outcome.String())
}

type Printer struct {
	W     io.Writer
	Width int
}

func (p Printer) PrintConfiguration(m *machines.Machine) error {
	width := p.Width
	if width <= 0 {
		width = Width(m)
	}
	_, err := fmt.Fprintln(p.W, Configuration(m, width))
	return err
}

func (p Printer) PrintResult(r machines.Result) error {
	_, err := fmt.Fprintln(p.W, Outcome(r))
	return err
}
