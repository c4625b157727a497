// Package commands assembles the CLI of the screen preview tool.
//
//	commands := commands.New(lggr)
//	root, err := commands.Root()
//	if err != nil {
//	    return err
//	}
//	return root.Execute()
package commands

import (
	"github.com/spf13/cobra"

	"github.com/cometh-game/cometh-screens/commands/screens"
	"github.com/cometh-game/cometh-screens/commands/text"
	"github.com/cometh-game/cometh-screens/pkg/logger"
)

var rootLong = text.LongDesc(`
	Previews the screens a hardware wallet shows before signing a Cometh contract call.
`)

// Commands provides a factory for creating CLI commands with a shared logger.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Preview creates the preview command.
func (c *Commands) Preview() (*cobra.Command, error) {
	return screens.NewPreviewCommand(screens.Config{Logger: c.lggr})
}

// Selectors creates the selectors command.
func (c *Commands) Selectors() (*cobra.Command, error) {
	return screens.NewSelectorsCommand(screens.Config{Logger: c.lggr})
}

// Root creates the root command with every subcommand attached.
func (c *Commands) Root() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "comethscreens",
		Short:         "Cometh confirmation screen tooling",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	for _, build := range []func() (*cobra.Command, error){c.Preview, c.Selectors} {
		cmd, err := build()
		if err != nil {
			return nil, err
		}
		root.AddCommand(cmd)
	}

	return root, nil
}
