package repl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// resultMarker prefixes every result line, value and error alike.
const resultMarker = "=> "

// palette holds the lipgloss styles for one session.
type palette struct {
	prompt lipgloss.Style
	cont   lipgloss.Style
	result lipgloss.Style
	errMsg lipgloss.Style
	dim    lipgloss.Style
}

// newPalette builds the session styles; with noColor everything renders
// plain.
func newPalette(noColor bool) *palette {
	if noColor {
		plain := lipgloss.NewStyle()
		return &palette{prompt: plain, cont: plain, result: plain, errMsg: plain, dim: plain}
	}
	return &palette{
		// prompt in cyan, continuation dimmed
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true),
		cont: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		// result lines in green
		result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),

		// error lines in red
		errMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		// dim for metadata (truncation notes)
		dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// FormatResult renders one evaluation outcome to the output stream.
// Every completed cycle produces exactly one marker-prefixed line,
// carrying either the inspected value or the classified error message.
func (p *palette) FormatResult(w io.Writer, res *Result) {
	if res.Fault != FaultNone {
		fmt.Fprintln(w, p.errMsg.Render(fmt.Sprintf("%s%s: %v", resultMarker, res.Fault, res.Err)))
		return
	}
	line := p.result.Render(resultMarker + res.Inspected)
	if res.Truncated {
		line += p.dim.Render(" ... (truncated)")
	}
	fmt.Fprintln(w, line)
}
