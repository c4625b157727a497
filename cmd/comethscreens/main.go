// Package main is the entrypoint of the comethscreens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cometh-game/cometh-screens/commands"
	"github.com/cometh-game/cometh-screens/config"
	"github.com/cometh-game/cometh-screens/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The log level comes from the environment; file settings are read by each command.
	settings, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lggr, err := logger.NewConsole(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	root, err := commands.New(lggr.Named("comethscreens")).Root()
	if err != nil {
		return err
	}

	return root.Execute()
}
