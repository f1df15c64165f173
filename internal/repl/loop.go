package repl

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// state is the loop driver's position in the read-eval-print cycle.
type state int

const (
	stateAwaitingInput state = iota
	stateEvaluating
	statePrinting
	stateTerminated
)

func (s state) String() string {
	switch s {
	case stateAwaitingInput:
		return "awaiting-input"
	case stateEvaluating:
		return "evaluating"
	case statePrinting:
		return "printing"
	default:
		return "terminated"
	}
}

// Loop drives the read-eval-print cycle. It owns the execution context:
// the engine (and its runtime) is created once per Loop and survives
// every iteration, which is what makes bindings persist.
type Loop struct {
	cfg     Config
	engine  *Engine
	reader  *Reader
	src     LineSource
	palette *palette
	state   state
}

// New creates a Loop from the config, wiring the line source, engine
// and printer together.
func New(cfg Config) (*Loop, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var src LineSource
	var err error
	if cfg.Input != nil {
		src = NewScanSource(cfg.Input, cfg.Output)
	} else {
		src, err = NewReadlineSource(cfg.HistoryFile)
		if err != nil {
			return nil, err
		}
	}

	engine, err := NewEngine(cfg.Output, cfg.MaxOutputChars)
	if err != nil {
		src.Close()
		return nil, err
	}

	pal := newPalette(cfg.NoColor)
	return &Loop{
		cfg:     cfg,
		engine:  engine,
		reader:  NewReader(src, pal.prompt.Render(cfg.Prompt), pal.cont.Render(cfg.Continuation)),
		src:     src,
		palette: pal,
		state:   stateAwaitingInput,
	}, nil
}

// State returns the driver's current state.
func (l *Loop) State() state { return l.state }

// transition moves the driver to s, tracing it when Debug is on.
func (l *Loop) transition(s state) {
	l.state = s
	if l.cfg.Debug {
		fmt.Fprintln(l.cfg.Output, l.palette.dim.Render("["+s.String()+"]"))
	}
}

// Run cycles read, evaluate, print until an exit command or the end of
// input. Evaluation faults are reported and the loop continues; only
// stream exhaustion, an exit token or an external interrupt end it.
// Exit is normal termination, not a fault.
func (l *Loop) Run(ctx context.Context) error {
	defer l.src.Close()
	defer func() { l.transition(stateTerminated) }()

	for {
		l.transition(stateAwaitingInput)
		fragment, err := l.reader.Read()
		if err != nil {
			if errors.Is(err, ErrStreamEnded) {
				return nil
			}
			if errors.Is(err, ErrIncompleteInput) {
				return fmt.Errorf("reading input: %w", err)
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if IsExitCommand(fragment) {
			return nil
		}

		l.transition(stateEvaluating)
		res := l.engine.Evaluate(ctx, fragment)

		l.transition(statePrinting)
		l.palette.FormatResult(l.cfg.Output, res)

		if res.Fault == FaultInterrupt {
			// external cancellation, not a recoverable fault
			return nil
		}
	}
}

// Run creates a Loop from cfg and runs it to completion.
func Run(ctx context.Context, cfg Config) error {
	loop, err := New(cfg)
	if err != nil {
		return err
	}
	return loop.Run(ctx)
}
