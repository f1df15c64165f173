package repl

import (
	"strings"

	"github.com/dop251/goja/parser"
)

// completeness is the verdict of the completeness predicate.
type completeness int

const (
	// fragmentComplete: the buffer parses as a full program
	fragmentComplete completeness = iota

	// fragmentIncomplete: parsing failed because the buffer is
	// truncated (unterminated block, dangling operator); more lines can
	// still complete it
	fragmentIncomplete

	// fragmentInvalid: parsing failed in a way no further input can
	// repair; the buffer is handed to the evaluator so the syntax fault
	// is surfaced
	fragmentInvalid
)

// checkComplete parses the accumulated buffer and decides whether to
// keep reading. Truncation is told apart from genuine syntax errors by
// the parser's end-of-input diagnostic: only the former keeps the
// reader in continuation mode.
func checkComplete(src string) completeness {
	_, err := parser.ParseFile(nil, "repl", src, 0)
	if err == nil {
		return fragmentComplete
	}
	if strings.Contains(err.Error(), "Unexpected end of input") {
		return fragmentIncomplete
	}
	return fragmentInvalid
}
