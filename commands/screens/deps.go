// Package screens provides the CLI commands that preview confirmation screens.
package screens

import (
	"github.com/cometh-game/cometh-screens/config"
	"github.com/cometh-game/cometh-screens/tokens"
)

// ConfigLoaderFunc loads the configuration from an optional file path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// TokensLoaderFunc loads a token list from a file path.
type TokensLoaderFunc func(path string) (*tokens.List, error)

// OperationLoaderFunc loads an operation description from a file path.
type OperationLoaderFunc func(path string) (Operation, error)

// Deps holds the injectable dependencies for screen commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// TokensLoader loads the token list.
	// Default: tokens.Load
	TokensLoader TokensLoaderFunc

	// OperationLoader loads the operation to preview.
	// Default: LoadOperation
	OperationLoader OperationLoaderFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.TokensLoader == nil {
		d.TokensLoader = tokens.Load
	}
	if d.OperationLoader == nil {
		d.OperationLoader = LoadOperation
	}
}
