package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/goclone"
	"github.com/reoring/goclone/i18n"
)

var (
	// Global flags
	verbose bool
	lang    string

	// Logger; built lazily unless a test installs one.
	logger *zap.Logger
)

func main() {
	os.Exit(runMain(newRootCmd()))
}

// runMain executes root and returns the process exit code. The logger is
// flushed on every path because PersistentPostRun is skipped when a command
// fails.
func runMain(root *cobra.Command) int {
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goclone",
		Short: "Show the difference between shallow and deep copies",
		Long: `goclone copies a pack of [Dog("Buster"), "Ginger", "Mimi", "Ella"],
renames the dog in the copy and prints what the original sees.

A shallow copy shares the dog with the original, so the original's dog is
renamed too. A deep copy duplicates the dog, so the original keeps its name.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			i18n.SetLanguage(lang)
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			} else {
				config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.PersistentFlags().StringVar(&lang, "lang", "en", "language for error messages (en, ja)")

	root.AddCommand(newRunCmd(), newExplainCmd())
	return root
}

// printError renders Issues through the current translator, one per line.
func printError(w io.Writer, err error) {
	iss, ok := goclone.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(w, "error: %s: %s", it.Path, i18n.T(it.Code, stringParams(it.Params)))
		if it.Message != "" {
			fmt.Fprintf(w, ": %s", it.Message)
		}
		fmt.Fprintln(w)
	}
}

func stringParams(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fmt.Sprint(v)
	}
	return out
}
