package repl

import (
	"errors"
	"io"
	"strings"
)

// Reader accumulates input lines until they form a complete fragment.
// The prompts are taken pre-rendered; the Reader only decides which of
// the two to show.
type Reader struct {
	src    LineSource
	prompt string
	cont   string
}

// NewReader creates a Reader over the given line source.
func NewReader(src LineSource, prompt, cont string) *Reader {
	return &Reader{src: src, prompt: prompt, cont: cont}
}

// Read obtains one complete fragment. Lines are appended (with their
// terminators) to a buffer until the completeness predicate accepts it;
// while the buffer is incomplete the continuation indicator is shown
// instead of the primary prompt. Blank input between fragments is
// skipped. Returns ErrStreamEnded if input runs out between fragments
// and ErrIncompleteInput if it runs out inside one.
func (r *Reader) Read() (string, error) {
	var buf strings.Builder

	for {
		prompt := r.prompt
		if buf.Len() > 0 {
			prompt = r.cont
		}

		line, err := r.src.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if buf.Len() == 0 {
					return "", ErrStreamEnded
				}
				return "", ErrIncompleteInput
			}
			return "", err
		}

		if buf.Len() == 0 && strings.TrimSpace(line) == "" {
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		switch checkComplete(buf.String()) {
		case fragmentIncomplete:
			continue
		default:
			// complete, or invalid in a way more input cannot repair;
			// either way the evaluator takes it from here
			return buf.String(), nil
		}
	}
}
