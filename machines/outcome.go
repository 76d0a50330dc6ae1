package machines

import "fmt"

type Outcome int

const (
	Running Outcome = iota
	Accepted
	Stuck
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Stuck:
		return "stuck"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) IsTerminal() bool {
	switch o {
	case Accepted, Stuck, Aborted:
		return true
	default:
		return false
	}
}

// Result reports how a run ended. State and Read describe the configuration the machine halted in.
type Result struct {
	Outcome  Outcome
	Steps    int
	MaxSteps int
	State    string
	Read     rune
}
