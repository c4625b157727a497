package screens

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cometh-game/cometh-screens/commands/flags"
	"github.com/cometh-game/cometh-screens/commands/text"
	"github.com/cometh-game/cometh-screens/params"
	"github.com/cometh-game/cometh-screens/pkg/logger"
	"github.com/cometh-game/cometh-screens/screen"
	"github.com/cometh-game/cometh-screens/session"
	"github.com/cometh-game/cometh-screens/tokens"
)

var (
	previewShort = "Preview the confirmation screens of an operation"

	previewLong = text.LongDesc(`
		Renders the confirmation screens the device shows for a decoded operation.

		The operation is read from a YAML file mirroring the decoder context. Fee tokens are
		resolved against the token list given by --tokens or the tokens_file setting.
		Exits with an error when any screen fails to render.
	`)

	previewExample = text.Examples(`
		# Preview every screen of an operation
		comethscreens preview -i create_offer.yaml --tokens tokens.yaml

		# Preview only the third screen with custom buffer sizes
		comethscreens preview -i sublet.yaml --index 2 -c config.yaml
	`)

	selectorsShort = "List supported selectors and their screen counts"
)

// Config holds the configuration for screen commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Renderer renders the screens. Defaults to screen.NewRenderer().
	Renderer *screen.Renderer

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.New("screens.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

type previewFlags struct {
	input      string
	configPath string
	tokensPath string
	index      int
}

// NewPreviewCommand creates the "preview" command.
func NewPreviewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.deps()
	if cfg.Renderer == nil {
		cfg.Renderer = screen.NewRenderer()
	}

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   previewShort,
		Long:    previewLong,
		Example: previewExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := previewFlags{
				input:      flags.MustString(cmd.Flags().GetString("input")),
				configPath: flags.MustString(cmd.Flags().GetString("config")),
				tokensPath: flags.MustString(cmd.Flags().GetString("tokens")),
				index:      flags.MustInt(cmd.Flags().GetInt("index")),
			}

			return runPreview(cmd, cfg, f)
		},
	}

	flags.Input(cmd)
	flags.Config(cmd)
	flags.Tokens(cmd)
	cmd.Flags().Int("index", -1, "Render only this screen index (default: all screens)")

	return cmd, nil
}

// runPreview executes the preview command logic.
func runPreview(cmd *cobra.Command, cfg Config, f previewFlags) error {
	deps := cfg.deps()

	// --- Load

	settings, err := deps.ConfigLoader(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var list *tokens.List
	tokensPath := f.tokensPath
	if tokensPath == "" {
		tokensPath = settings.TokensFile
	}
	if tokensPath != "" {
		if list, err = deps.TokensLoader(tokensPath); err != nil {
			return fmt.Errorf("failed to load token list: %w", err)
		}
		cfg.Logger.Debugw("Loaded token list", "path", tokensPath, "tokens", list.Len())
	}

	op, err := deps.OperationLoader(f.input)
	if err != nil {
		return fmt.Errorf("failed to load operation: %w", err)
	}
	decoded, err := op.Context(list)
	if err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}

	// --- Render

	sess, err := session.FromContext(cfg.Logger, cfg.Renderer, decoded)
	if err != nil {
		return err
	}
	defer sess.Close()

	out := cmd.OutOrStdout()
	titleLen, msgLen := settings.Display.TitleLength, settings.Display.MsgLength

	if f.index >= 0 {
		res := sess.Render(screen.Request{Index: f.index, TitleLength: titleLen, MsgLength: msgLen})
		if !res.OK() {
			return fmt.Errorf("screen %d: %w", f.index, res.Err)
		}
		printScreen(out, f.index, res)

		return nil
	}

	fmt.Fprintf(out, "%s (%d screens)\n", sess.Selector(), sess.ScreenCount())
	results, err := sess.Screens(titleLen, msgLen)
	for i, res := range results {
		printScreen(out, i, res)
	}

	return err
}

func printScreen(w io.Writer, index int, res screen.Result) {
	fmt.Fprintf(w, "[%d] %s\n    %s\n", index, res.Title, res.Msg)
}

// NewSelectorsCommand creates the "selectors" command.
func NewSelectorsCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cobra.Command{
		Use:   "selectors",
		Short: selectorsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sb strings.Builder
			for _, sel := range params.Selectors() {
				fmt.Fprintf(&sb, "%-30s %d\n", sel, screen.ScreenCount(sel))
			}
			_, err := io.WriteString(cmd.OutOrStdout(), sb.String())

			return err
		},
	}, nil
}
