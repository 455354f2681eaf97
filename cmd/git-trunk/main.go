package main

import (
	"os"

	"gittrunk.dev/gittrunk/internal/cli"
	"gittrunk.dev/gittrunk/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		splog := tui.NewSplog()
		splog.Error("%v", err)
		_ = splog.Close()
		os.Exit(1)
	}
}
