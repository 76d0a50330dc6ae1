package machines

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/symbols"
	"github.com/reusee/turing/tapes"
	"github.com/reusee/turing/transitions"
)

var (
	ErrInvalidDescription = errors.New("invalid machine description")
	ErrInvalidOption      = errors.New("invalid machine option")
)

const DefaultMaxSteps = 9999

type buildConfig struct {
	maxSteps int
	strict   bool
	logger   logs.Logger
}

type Option func(*buildConfig)

func WithMaxSteps(n int) Option {
	return func(c *buildConfig) {
		c.maxSteps = n
	}
}

func WithStrict() Option {
	return func(c *buildConfig) {
		c.strict = true
	}
}

func WithLogger(logger logs.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// Build validates every cross reference of desc. On error no Machine is returned.
func Build(desc Description, opts ...Option) (*Machine, error) {
	config := buildConfig{
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.maxSteps <= 0 {
		return nil, fmt.Errorf("%w: max steps must be positive, got %d", ErrInvalidOption, config.maxSteps)
	}
	if config.logger == nil {
		config.logger = slog.New(slog.DiscardHandler)
	}

	if len(desc.States) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrInvalidDescription)
	}
	if len(desc.Alphabet) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidDescription)
	}

	states := symbols.NewRegistry[string]()
	for _, name := range desc.States {
		if _, err := states.Register(name); err != nil {
			return nil, fmt.Errorf("state: %w", err)
		}
	}
	alphabet := symbols.NewRegistry[rune]()
	for _, r := range desc.Alphabet {
		if _, err := alphabet.Register(r); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", r, err)
		}
	}

	blank, err := alphabet.IndexOf(desc.Blank)
	if err != nil {
		return nil, fmt.Errorf("blank symbol %q: %w", desc.Blank, err)
	}
	initial, err := states.IndexOf(desc.Initial)
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}

	accepting := make([]bool, states.Len())
	for _, name := range desc.Accepting {
		idx, err := states.IndexOf(name)
		if err != nil {
			return nil, fmt.Errorf("accepting state: %w", err)
		}
		accepting[idx] = true
	}

	tape := tapes.New(blank)
	for i, r := range desc.Tape {
		sym, err := alphabet.IndexOf(r)
		if err != nil {
			return nil, fmt.Errorf("tape[%d] %q: %w", i, r, err)
		}
		if i > 0 {
			tape.MoveHead(tapes.Right)
		}
		tape.Write(sym)
	}
	tape.RewindToLeftBoundary()

	var tableOpts []transitions.Option
	if config.strict {
		tableOpts = append(tableOpts, transitions.WithStrict())
	}
	table := transitions.New(states.Len(), alphabet.Len(), tableOpts...)
	for i, rule := range desc.Transitions {
		tr, err := resolveRule(states, alphabet, rule)
		if err != nil {
			return nil, fmt.Errorf("transition[%d]: %w", i, err)
		}
		if err := table.Set(tr); err != nil {
			return nil, fmt.Errorf("transition[%d]: %w", i, err)
		}
	}

	config.logger.Debug("machine built",
		"states", states.Len(),
		"symbols", alphabet.Len(),
		"transitions", table.Len(),
		"tape", len(desc.Tape),
		"max_steps", config.maxSteps,
		"strict", config.strict,
	)

	return &Machine{
		states:    states,
		alphabet:  alphabet,
		tape:      tape,
		table:     table,
		state:     initial,
		accepting: accepting,
		maxSteps:  config.maxSteps,
		logger:    config.logger,
	}, nil
}

func resolveRule(
	states *symbols.Registry[string],
	alphabet *symbols.Registry[rune],
	rule Rule,
) (tr transitions.Transition, err error) {
	if tr.State, err = states.IndexOf(rule.State); err != nil {
		return tr, fmt.Errorf("state: %w", err)
	}
	if tr.Read, err = alphabet.IndexOf(rule.Read); err != nil {
		return tr, fmt.Errorf("read symbol %q: %w", rule.Read, err)
	}
	if tr.Write, err = alphabet.IndexOf(rule.Write); err != nil {
		return tr, fmt.Errorf("write symbol %q: %w", rule.Write, err)
	}
	if tr.Next, err = states.IndexOf(rule.Next); err != nil {
		return tr, fmt.Errorf("next state: %w", err)
	}
	tr.Move = rule.Move
	return tr, nil
}
