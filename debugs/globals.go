package debugs

import (
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/printers"
)

// MachineGlobals exposes the configuration of m to a starlark session.
func MachineGlobals(m *machines.Machine) map[string]any {
	tape := m.Tape()

	var cells []string
	head := 0
	for id, sym := range tape.Cells() {
		if id == tape.Head() {
			head = len(cells)
		}
		cells = append(cells, string(m.SymbolOf(sym)))
	}

	var states []string
	for _, name := range m.States().All() {
		states = append(states, name)
	}
	var alphabet []string
	for _, r := range m.Symbols().All() {
		alphabet = append(alphabet, string(r))
	}

	var rules []map[string]any
	for tr := range m.Table().All() {
		state, _ := m.States().Name(tr.State)
		next, _ := m.States().Name(tr.Next)
		rules = append(rules, map[string]any{
			"state": state,
			"read":  string(m.SymbolOf(tr.Read)),
			"write": string(m.SymbolOf(tr.Write)),
			"move":  tr.Move,
			"next":  next,
		})
	}

	return map[string]any{
		"state":       m.StateName(),
		"steps":       m.Steps(),
		"max_steps":   m.MaxSteps(),
		"outcome":     m.Outcome(),
		"cells":       cells,
		"head":        head,
		"states":      states,
		"alphabet":    alphabet,
		"transitions": rules,
		"line": func() string {
			return printers.Configuration(m, printers.Width(m))
		},
		"accepting": func(name string) bool {
			idx, err := m.States().IndexOf(name)
			if err != nil {
				return false
			}
			return m.IsAccepting(idx)
		},
	}
}
