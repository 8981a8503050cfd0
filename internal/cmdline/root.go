// Package cmdline is the cobra command tree for loclens: count (the
// default), diff, sum, strip, and languages.
package cmdline

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loclens [paths...]",
	Short: "Count lines of code by language",
	Long: `loclens counts lines of source code across a tree of files,
classifying each line as code, comment, or blank using per-language
lexical rules, and reports totals by language.

Running loclens with no subcommand is equivalent to "loclens count":
any positional arguments are treated as scan roots.`,
	Version: "0.1.0",
	Args:    cobra.ArbitraryArgs,
	RunE:    runCount,
}

// Execute runs the root command, printing any error to stderr and
// exiting 1, matching this codebase's error-boundary convention.
// count's flags are copied onto the root command here, once every
// package-level init has run, so "loclens --format json ./src" works
// the same as "loclens count --format json ./src".
func Execute() {
	rootCmd.Flags().AddFlagSet(countCmd.Flags())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(languagesCmd)
}

// parseLogLevel converts a string log level flag to slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "":
		return slog.LevelWarn, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", level)
	}
}
