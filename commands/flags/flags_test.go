package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	t.Parallel()

	t.Run("flag properties", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test"}
		Input(cmd)

		f := cmd.Flags().Lookup("input")
		require.NotNil(t, f)
		assert.Equal(t, "i", f.Shorthand)
		assert.Empty(t, f.DefValue)
	})

	t.Run("is required", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test"}
		Input(cmd)

		err := cmd.ValidateRequiredFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})

	t.Run("value retrieval", func(t *testing.T) {
		t.Parallel()

		cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, _ []string) {}}
		Input(cmd)

		cmd.SetArgs([]string{"-i", "craft.yaml"})
		require.NoError(t, cmd.Execute())
		assert.Equal(t, "craft.yaml", MustString(cmd.Flags().GetString("input")))
	})
}

func TestConfigAndTokens(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, _ []string) {}}
	Config(cmd)
	Tokens(cmd)

	cmd.SetArgs([]string{"-c", "config.yaml", "--tokens", "tokens.yaml"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "config.yaml", MustString(cmd.Flags().GetString("config")))
	assert.Equal(t, "tokens.yaml", MustString(cmd.Flags().GetString("tokens")))
	assert.NoError(t, cmd.ValidateRequiredFlags())
}
