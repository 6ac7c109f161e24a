// Package main is the entry point for the bridge CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/mhbakhshipour/jira-bridge/cmd"
	"github.com/mhbakhshipour/jira-bridge/internal/logging"
)

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logging.Debug("starting bridge cli", "log_level", logLevel)

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
