// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui"
)

// Persistent flags defined on the root command
const (
	FlagCwd     = "cwd"
	FlagDebug   = "debug"
	FlagNoColor = "no-color"
)

// NewSplog creates the logger of a command, writing to the command's output
func NewSplog(cmd *cobra.Command) (*tui.Splog, error) {
	debug, _ := cmd.Flags().GetBool(FlagDebug)
	return tui.NewSplogWithOptions(tui.SplogOptions{
		Writer:  cmd.OutOrStdout(),
		LogFile: tui.GetLogFilePath(),
		Debug:   debug || os.Getenv("DEBUG") != "",
	})
}

// WorkDir returns the directory given with --cwd, or the process working directory
func WorkDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString(FlagCwd)
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	splog, err := NewSplog(cmd)
	if err != nil {
		return err
	}
	defer splog.Close()

	dir, err := WorkDir(cmd)
	if err != nil {
		return err
	}
	ctx, err := runtime.NewContext(cmd.Context(), dir, splog)
	if err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}
	return fn(ctx)
}
