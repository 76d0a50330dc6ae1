package transitions

import (
	"errors"
	"fmt"
	"iter"

	"github.com/reusee/turing/symbols"
	"github.com/reusee/turing/tapes"
)

var (
	ErrDuplicateTransition = errors.New("duplicated transition")
	ErrOutOfRange          = errors.New("index out of range")
)

type Transition struct {
	State symbols.Index
	Read  symbols.Index
	Write symbols.Index
	Move  tapes.Direction
	Next  symbols.Index
}

type entry struct {
	transition Transition
	defined    bool
}

// Table maps (state, symbol) to at most one Transition, stored densely by state*numSymbols+symbol.
type Table struct {
	entries    []entry
	numStates  int
	numSymbols int
	strict     bool
	defined    int
}

type Option func(*Table)

// WithStrict rejects a second transition for an already defined (state, symbol) key.
// Without it, the later transition replaces the earlier one.
func WithStrict() Option {
	return func(t *Table) {
		t.strict = true
	}
}

func New(numStates, numSymbols int, opts ...Option) *Table {
	t := &Table{
		entries:    make([]entry, numStates*numSymbols),
		numStates:  numStates,
		numSymbols: numSymbols,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table) Strict() bool {
	return t.strict
}

func (t *Table) key(state, sym symbols.Index) (int, bool) {
	if state < 0 || int(state) >= t.numStates ||
		sym < 0 || int(sym) >= t.numSymbols {
		return 0, false
	}
	return int(state)*t.numSymbols + int(sym), true
}

func (t *Table) Set(tr Transition) error {
	k, ok := t.key(tr.State, tr.Read)
	if !ok {
		return fmt.Errorf("%w: state %d symbol %d", ErrOutOfRange, tr.State, tr.Read)
	}
	if _, ok := t.key(tr.Next, tr.Write); !ok {
		return fmt.Errorf("%w: next state %d write symbol %d", ErrOutOfRange, tr.Next, tr.Write)
	}
	switch tr.Move {
	case tapes.Left, tapes.Right, tapes.NoMove:
	default:
		return fmt.Errorf("%w: move %v", ErrOutOfRange, tr.Move)
	}
	if t.entries[k].defined {
		if t.strict {
			return fmt.Errorf("%w: state %d symbol %d", ErrDuplicateTransition, tr.State, tr.Read)
		}
	} else {
		t.defined++
	}
	t.entries[k] = entry{
		transition: tr,
		defined:    true,
	}
	return nil
}

func (t *Table) Lookup(state, sym symbols.Index) (Transition, bool) {
	k, ok := t.key(state, sym)
	if !ok {
		return Transition{}, false
	}
	e := t.entries[k]
	return e.transition, e.defined
}

func (t *Table) Len() int {
	return t.defined
}

// All yields defined transitions ordered by state, then read symbol.
func (t *Table) All() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, e := range t.entries {
			if !e.defined {
				continue
			}
			if !yield(e.transition) {
				return
			}
		}
	}
}
