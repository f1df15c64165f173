package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// LineSource yields one input line at a time. The prompt is the string
// to display before reading; implementations decide how (a terminal
// line editor renders it itself, a plain reader writes it to output).
// Returns io.EOF when the stream is exhausted.
type LineSource interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// scanSource reads newline-delimited lines from a plain reader (pipes,
// files, test fixtures) and echoes prompts to the output writer.
type scanSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScanSource creates a LineSource over a plain reader, writing
// prompts to out.
func NewScanSource(in io.Reader, out io.Writer) LineSource {
	return &scanSource{scanner: bufio.NewScanner(in), out: out}
}

func (s *scanSource) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *scanSource) Close() error { return nil }

// readlineSource is the interactive LineSource: terminal line editing
// with a persistent history file.
type readlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource creates an interactive LineSource on the terminal.
func NewReadlineSource(historyFile string) (LineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return &readlineSource{rl: rl}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		// Ctrl-C and Ctrl-D both end the session
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

func (r *readlineSource) Close() error { return r.rl.Close() }
