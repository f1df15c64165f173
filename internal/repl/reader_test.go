package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	src := NewScanSource(strings.NewReader(input), &out)
	return NewReader(src, ">> ", ".. "), &out
}

func TestCheckComplete(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want completeness
	}{
		{"expression", "1 + 2\n", fragmentComplete},
		{"closed function", "function f() {\n  return 1\n}\n", fragmentComplete},
		{"open function", "function f() {\n", fragmentIncomplete},
		{"open block", "if (true) {\n  1\n", fragmentIncomplete},
		{"dangling operator", "1 +\n", fragmentIncomplete},
		{"open array", "[1, 2,\n", fragmentIncomplete},
		{"stray paren", ") wat\n", fragmentInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkComplete(tt.src); got != tt.want {
				t.Errorf("checkComplete(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestReader_SingleLine(t *testing.T) {
	r, _ := newTestReader("1 + 2\n")

	frag, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "1 + 2\n" {
		t.Errorf("expected the line with its terminator, got %q", frag)
	}
}

func TestReader_MultiLineFragment(t *testing.T) {
	r, out := newTestReader("function add(a, b) {\n  return a + b\n}\n")

	frag, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "function add(a, b) {\n  return a + b\n}\n" {
		t.Errorf("expected one fragment spanning all lines, got %q", frag)
	}

	// primary prompt once, continuation for the two follow-up lines
	if got := strings.Count(out.String(), ".. "); got != 2 {
		t.Errorf("expected 2 continuation prompts, got %d in %q", got, out.String())
	}
}

func TestReader_SkipsBlankLines(t *testing.T) {
	r, _ := newTestReader("\n   \n7\n")

	frag, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != "7\n" {
		t.Errorf("expected blank lines to be skipped, got %q", frag)
	}
}

func TestReader_StreamEnded(t *testing.T) {
	r, _ := newTestReader("")

	if _, err := r.Read(); !errors.Is(err, ErrStreamEnded) {
		t.Errorf("expected ErrStreamEnded, got %v", err)
	}
}

func TestReader_IncompleteAtEOF(t *testing.T) {
	r, _ := newTestReader("if (true) {\n")

	if _, err := r.Read(); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("expected ErrIncompleteInput, got %v", err)
	}
}

func TestReader_InvalidFragmentIsReturned(t *testing.T) {
	// a genuine syntax error cannot become complete; it is handed over
	// whole so the evaluator can surface it
	r, _ := newTestReader(") wat\n")

	frag, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frag != ") wat\n" {
		t.Errorf("expected the invalid fragment verbatim, got %q", frag)
	}
}
