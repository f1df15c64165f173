package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/itsmostafa/gorepl/internal/repl"
	"github.com/itsmostafa/gorepl/internal/version"
	"github.com/spf13/cobra"
)

var prompt string
var continuation string
var noColor bool
var maxOutput int
var noHistory bool
var debug bool

var rootCmd = &cobra.Command{
	Use:   "gorepl",
	Short: "A minimal JavaScript REPL with a persistent execution context",
	Long: `gorepl reads expressions line by line, accumulating input until it
forms a complete fragment, evaluates it against a single persistent
runtime and prints the result. Bindings survive across inputs because
the context does: one runtime lives for the whole session.

Type "exit" or "quit" (or press Ctrl-D) to leave.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := repl.DefaultConfig()
		cfg.Prompt = prompt
		cfg.Continuation = continuation
		cfg.NoColor = noColor
		cfg.MaxOutputChars = maxOutput
		cfg.Debug = debug
		cfg.Output = cmd.OutOrStdout()

		if !noHistory {
			if home, err := os.UserHomeDir(); err == nil {
				cfg.HistoryFile = filepath.Join(home, ".gorepl_history")
			}
		}

		// Piped input gets the plain line reader; history and line
		// editing only make sense on a terminal
		if !readline.IsTerminal(int(os.Stdin.Fd())) {
			cfg.Input = os.Stdin
			cfg.NoColor = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return repl.Run(ctx, cfg)
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gorepl %s\n", version.String()))

	defaults := repl.DefaultConfig()

	// Prompt flag with env var fallback
	defaultPrompt := defaults.Prompt
	if envPrompt := os.Getenv("GOREPL_PROMPT"); envPrompt != "" {
		defaultPrompt = envPrompt
	}
	rootCmd.Flags().StringVar(&prompt, "prompt", defaultPrompt, "Primary input prompt")
	rootCmd.Flags().StringVar(&continuation, "continuation", defaults.Continuation, "Prompt shown while a fragment is incomplete")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.Flags().IntVar(&maxOutput, "max-output", defaults.MaxOutputChars, "Maximum characters of a result to display")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not read or write the history file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Trace loop state transitions")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
