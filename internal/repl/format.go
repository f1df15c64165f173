package repl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dop251/goja"
)

// inspect renders a value for display and reports whether the rendering
// was clipped to the engine's output limit. The clip lands on a rune
// boundary so a multi-byte character is never split.
func (e *Engine) inspect(val goja.Value) (string, bool) {
	rendered := formatValue(val)
	if e.maxOutput <= 0 || len(rendered) <= e.maxOutput {
		return rendered, false
	}
	cut := e.maxOutput
	for cut > 0 && !utf8.RuneStart(rendered[cut]) {
		cut--
	}
	return rendered[:cut], true
}

// formatValue formats a goja value for display in REPL output.
func formatValue(val goja.Value) string {
	if val == nil || goja.IsUndefined(val) {
		return "undefined"
	}
	if goja.IsNull(val) {
		return "null"
	}

	// Export to a Go value for better formatting
	exported := val.Export()

	switch v := exported.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []any:
		if len(v) == 0 {
			return "[]"
		}
		if len(v) > 20 {
			// Truncate large arrays
			items := make([]string, 21)
			for i := 0; i < 20; i++ {
				items[i] = fmt.Sprintf("%v", v[i])
			}
			items[20] = fmt.Sprintf("... (%d more items)", len(v)-20)
			return "[" + strings.Join(items, ", ") + "]"
		}
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprintf("%v", item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
