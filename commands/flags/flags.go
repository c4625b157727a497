// Package flags provides flag helpers shared by the CLI commands.
//
// Command-specific flags should be defined locally in the command file.
package flags

import (
	"github.com/spf13/cobra"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustInt returns the int value, ignoring the error.
// Safe to use with registered flags where GetInt cannot fail.
func MustInt(i int, _ error) int { return i }

// Config adds the --config/-c flag pointing at an optional configuration file.
// Retrieve the value with cmd.Flags().GetString("config").
func Config(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to a configuration file (optional)")
}

// Tokens adds the --tokens flag pointing at a YAML token list. It overrides the tokens_file
// configuration value.
// Retrieve the value with cmd.Flags().GetString("tokens").
func Tokens(cmd *cobra.Command) {
	cmd.Flags().String("tokens", "", "Path to a YAML token list (optional)")
}

// Input adds the required --input/-i flag pointing at an operation file.
// Retrieve the value with cmd.Flags().GetString("input").
func Input(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Path to the YAML operation file (required)")
	_ = cmd.MarkFlagRequired("input")
}
