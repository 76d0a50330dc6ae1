package machines

import (
	"iter"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/symbols"
	"github.com/reusee/turing/tapes"
	"github.com/reusee/turing/transitions"
)

// Machine is not safe for concurrent use.
type Machine struct {
	states    *symbols.Registry[string]
	alphabet  *symbols.Registry[rune]
	tape      *tapes.Tape
	table     *transitions.Table
	state     symbols.Index
	accepting []bool
	steps     int
	maxSteps  int
	outcome   Outcome
	logger    logs.Logger
}

func (m *Machine) States() *symbols.Registry[string] {
	return m.states
}

func (m *Machine) Symbols() *symbols.Registry[rune] {
	return m.alphabet
}

func (m *Machine) Tape() *tapes.Tape {
	return m.tape
}

func (m *Machine) Table() *transitions.Table {
	return m.table
}

func (m *Machine) State() symbols.Index {
	return m.state
}

func (m *Machine) StateName() string {
	name, _ := m.states.Name(m.state)
	return name
}

func (m *Machine) SymbolOf(idx symbols.Index) rune {
	r, _ := m.alphabet.Name(idx)
	return r
}

func (m *Machine) IsAccepting(idx symbols.Index) bool {
	return idx >= 0 && int(idx) < len(m.accepting) && m.accepting[idx]
}

func (m *Machine) Steps() int {
	return m.steps
}

func (m *Machine) MaxSteps() int {
	return m.maxSteps
}

func (m *Machine) Outcome() Outcome {
	return m.outcome
}

// Step performs one iteration without the step ceiling.
// It reports halted=true with Accepted or Stuck when no step was taken.
func (m *Machine) Step() (outcome Outcome, halted bool) {
	if m.IsAccepting(m.state) {
		m.outcome = Accepted
		return Accepted, true
	}
	tr, ok := m.table.Lookup(m.state, m.tape.Read())
	if !ok {
		m.outcome = Stuck
		return Stuck, true
	}
	m.tape.Write(tr.Write)
	m.tape.MoveHead(tr.Move)
	m.state = tr.Next
	m.steps++
	return Running, false
}

// Configurations yields the machine before every step, including the last configuration
// before Accepted or Stuck. Once the step ceiling is reached it stops without yielding,
// unless the machine is in an accepting state, which is yielded and then accepted.
func (m *Machine) Configurations() iter.Seq[*Machine] {
	return func(yield func(*Machine) bool) {
		for {
			if m.steps >= m.maxSteps && !m.IsAccepting(m.state) {
				m.outcome = Aborted
				return
			}
			if !yield(m) {
				return
			}
			if _, halted := m.Step(); halted {
				return
			}
		}
	}
}

// Run drives the machine to a terminal outcome, calling observe with each configuration.
func (m *Machine) Run(observe func(*Machine)) Result {
	for config := range m.Configurations() {
		if observe != nil {
			observe(config)
		}
	}
	result := m.Result()
	m.logger.Debug("machine halted",
		"outcome", result.Outcome,
		"steps", result.Steps,
		"state", result.State,
	)
	return result
}

func (m *Machine) Result() Result {
	return Result{
		Outcome:  m.outcome,
		Steps:    m.steps,
		MaxSteps: m.maxSteps,
		State:    m.StateName(),
		Read:     m.SymbolOf(m.tape.Read()),
	}
}
