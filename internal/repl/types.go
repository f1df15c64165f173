// Package repl implements a read-eval-print loop over an embedded
// JavaScript engine. Input lines are accumulated until they parse as a
// complete fragment, evaluated against a single persistent runtime, and
// the inspected result (or the error) is printed before the loop repeats.
package repl

import (
	"errors"
	"io"
)

// Config holds configuration for a REPL session.
type Config struct {
	// Prompt is shown when a fresh fragment is being read
	Prompt string

	// Continuation is shown while an incomplete fragment is accumulating
	Continuation string

	// MaxOutputChars is the maximum characters of an inspected value to
	// display before truncating (default: 2000)
	MaxOutputChars int

	// NoColor disables lipgloss styling on all output
	NoColor bool

	// Input is the line source. When nil, the loop reads interactively
	// from the terminal with line editing and history.
	Input io.Reader

	// Output is where prompts, results and errors are written.
	// Defaults to stdout.
	Output io.Writer

	// HistoryFile is the readline history path for interactive sessions.
	// Empty disables history.
	HistoryFile string

	// Debug traces the loop driver's state transitions on the output
	// stream
	Debug bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Prompt:         ">> ",
		Continuation:   ".. ",
		MaxOutputChars: 2000,
	}
}

// Fault classifies how an evaluation failed.
type Fault int

const (
	// FaultNone means the evaluation produced a value
	FaultNone Fault = iota

	// FaultSyntax means the fragment was structurally invalid
	FaultSyntax

	// FaultRuntime means execution raised (TypeError, ReferenceError,
	// an uncaught thrown value, ...)
	FaultRuntime

	// FaultInterrupt means the evaluation was aborted externally
	FaultInterrupt
)

// String returns the display label for the fault class.
func (f Fault) String() string {
	switch f {
	case FaultSyntax:
		return "syntax error"
	case FaultRuntime:
		return "runtime error"
	case FaultInterrupt:
		return "interrupted"
	default:
		return "ok"
	}
}

// Result holds the outcome of evaluating one fragment: either an
// inspected value, or a classified error. It is consumed by the printer
// and discarded.
type Result struct {
	// Inspected is the display rendering of the value (valid when Fault
	// is FaultNone)
	Inspected string

	// Truncated indicates the inspected rendering was clipped to
	// MaxOutputChars
	Truncated bool

	// Fault classifies the failure, FaultNone on success
	Fault Fault

	// Err is the captured failure (nil on success)
	Err error
}

// Sentinel errors returned by the Reader.
var (
	// ErrStreamEnded means input was exhausted between fragments; the
	// loop terminates gracefully.
	ErrStreamEnded = errors.New("input stream ended")

	// ErrIncompleteInput means input was exhausted in the middle of an
	// unterminated fragment.
	ErrIncompleteInput = errors.New("incomplete input at end of stream")
)
