package machines

import (
	"github.com/reusee/turing/tapes"
)

// Description is the complete static input of a machine.
type Description struct {
	States      []string
	Accepting   []string
	Alphabet    []rune
	Blank       rune
	Initial     string
	Tape        []rune
	Transitions []Rule
}

type Rule struct {
	State string
	Read  rune
	Write rune
	Move  tapes.Direction
	Next  string
}
