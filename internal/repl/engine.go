package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
)

// Engine evaluates fragments against one persistent goja runtime. The
// runtime is created once and mutated in place, so every top-level
// binding a fragment creates is visible to all later fragments. The
// runtime's global object doubles as the implicit subject for
// unqualified lookups.
type Engine struct {
	vm        *goja.Runtime
	out       io.Writer
	maxOutput int
}

// NewEngine creates an engine with a fresh runtime and installs the
// built-in helpers (print, console.log, the re module).
func NewEngine(out io.Writer, maxOutput int) (*Engine, error) {
	e := &Engine{
		vm:        goja.New(),
		out:       out,
		maxOutput: maxOutput,
	}
	if err := e.installBuiltins(); err != nil {
		return nil, fmt.Errorf("failed to set up runtime: %w", err)
	}
	return e, nil
}

// Evaluate runs one fragment in the persistent runtime and captures the
// outcome. Faults never propagate: a failed evaluation returns a Result
// carrying the error, and the runtime keeps every binding it had before
// the fragment ran.
func (e *Engine) Evaluate(ctx context.Context, fragment string) *Result {
	done := make(chan struct{})
	defer close(done)

	if ctx != nil {
		go func() {
			select {
			case <-ctx.Done():
				e.vm.Interrupt(ctx.Err())
			case <-done:
			}
		}()
	}

	val, err := e.vm.RunString(fragment)
	if err != nil {
		return e.capture(err)
	}

	inspected, truncated := e.inspect(val)
	return &Result{Inspected: inspected, Truncated: truncated}
}

// capture classifies an evaluation error into a Result.
func (e *Engine) capture(err error) *Result {
	switch ferr := err.(type) {
	case *goja.InterruptedError:
		e.vm.ClearInterrupt()
		return &Result{
			Fault: FaultInterrupt,
			Err:   fmt.Errorf("evaluation interrupted: %v", ferr.Value()),
		}
	case *goja.CompilerSyntaxError:
		return &Result{
			Fault: FaultSyntax,
			Err:   fmt.Errorf("%s", firstLine(ferr.Error())),
		}
	case *goja.Exception:
		return &Result{
			Fault: FaultRuntime,
			Err:   fmt.Errorf("%s", firstLine(ferr.Error())),
		}
	default:
		return &Result{Fault: FaultRuntime, Err: err}
	}
}

// installBuiltins wires print, console.log and the re module into the
// runtime's global object.
func (e *Engine) installBuiltins() error {
	printFunc := func(call goja.FunctionCall) goja.Value {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.String()
		}
		fmt.Fprintln(e.out, strings.Join(args, " "))
		return goja.Undefined()
	}
	if err := e.vm.Set("print", printFunc); err != nil {
		return fmt.Errorf("failed to set print: %w", err)
	}

	console := e.vm.NewObject()
	if err := console.Set("log", printFunc); err != nil {
		return fmt.Errorf("failed to set console.log: %w", err)
	}
	if err := e.vm.Set("console", console); err != nil {
		return fmt.Errorf("failed to set console: %w", err)
	}

	if err := e.installRegexModule(); err != nil {
		return fmt.Errorf("failed to set up regex module: %w", err)
	}

	return nil
}

// firstLine strips a multi-line goja error (stack trace included) down
// to its message line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
