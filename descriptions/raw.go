package descriptions

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

var (
	ErrInvalidDescription = errors.New("invalid description")
	ErrUnknownFormat      = errors.New("unknown description format")
)

type rawRule struct {
	State string `json:"state"`
	Read  string `json:"read"`
	Write string `json:"write"`
	Move  string `json:"move"`
	Next  string `json:"next"`
}

// rawDescription is the format independent form, symbols are still strings.
type rawDescription struct {
	States      []string  `json:"states"`
	Accepting   []string  `json:"accepting"`
	Alphabet    []string  `json:"alphabet"`
	Blank       string    `json:"blank"`
	Initial     string    `json:"initial"`
	Tape        string    `json:"tape"`
	Transitions []rawRule `json:"transitions"`
}

func (r rawDescription) toDescription() (desc machines.Description, err error) {
	if len(r.States) == 0 {
		return desc, fmt.Errorf("%w: states: empty", ErrInvalidDescription)
	}
	if r.Initial == "" {
		return desc, fmt.Errorf("%w: initial: empty", ErrInvalidDescription)
	}
	desc.States = r.States
	desc.Accepting = r.Accepting
	desc.Initial = r.Initial
	desc.Tape = []rune(r.Tape)

	for i, s := range r.Alphabet {
		sym, err := symbolOf(fmt.Sprintf("alphabet[%d]", i), s)
		if err != nil {
			return desc, err
		}
		desc.Alphabet = append(desc.Alphabet, sym)
	}
	if desc.Blank, err = symbolOf("blank", r.Blank); err != nil {
		return desc, err
	}

	for i, rule := range r.Transitions {
		field := fmt.Sprintf("transitions[%d]", i)
		var ret machines.Rule
		ret.State = rule.State
		ret.Next = rule.Next
		if ret.Read, err = symbolOf(field+".read", rule.Read); err != nil {
			return desc, err
		}
		if ret.Write, err = symbolOf(field+".write", rule.Write); err != nil {
			return desc, err
		}
		if ret.Move, err = tapes.ParseDirection(rule.Move); err != nil {
			return desc, fmt.Errorf("%w: %s.move: %w", ErrInvalidDescription, field, err)
		}
		desc.Transitions = append(desc.Transitions, ret)
	}

	return desc, nil
}

func symbolOf(field string, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s: want a single character, got %q", ErrInvalidDescription, field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
