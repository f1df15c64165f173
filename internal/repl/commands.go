package repl

import "strings"

// exitTokens are the reserved inputs that end the session. They are
// checked against the whole trimmed fragment before evaluation, so an
// exit command never produces a result line (and never reaches the
// runtime, where `exit` would just be an unbound identifier).
var exitTokens = map[string]bool{
	"exit": true,
	"quit": true,
}

// IsExitCommand reports whether the fragment is a reserved exit token.
func IsExitCommand(fragment string) bool {
	return exitTokens[strings.TrimSpace(fragment)]
}
