package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stencil-dev/stencil-cli/internal/bundle"
	"github.com/stencil-dev/stencil-cli/internal/config"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
	"github.com/stencil-dev/stencil-cli/internal/output"
	"github.com/stencil-dev/stencil-cli/internal/progress"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
	"github.com/stencil-dev/stencil-cli/internal/setup"
	"github.com/stencil-dev/stencil-cli/internal/theme"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Save store settings for local theme development",
		Long: `Ask for the store URL, server port, username and token and save them
to the theme's .stencil file.

Values already in .stencil are offered as defaults and any other settings in
the file are kept. When the theme's config.json has a "jspm" section, the
theme's development dependencies are bundled afterwards.

Prompts use an interactive form on a terminal and plain lines otherwise,
so answers can be piped in:

  printf 'https://store.example.com\n3000\nme\ntoken\n' | stencil init`,
		Example: `  # Configure the theme in the current directory
  stencil init

  # Write the settings to another file
  stencil init --file ~/stencil/staging.json

  # Save settings without bundling
  stencil init --skip-bundle`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("file", "", "Settings file to write (default: <theme-dir>/.stencil)")
	cmd.Flags().Bool("skip-bundle", false, "Save settings without bundling jspm dependencies")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	path, err := dotStencilPath(cmd, env)
	if err != nil {
		return err
	}
	skipBundle, _ := cmd.Flags().GetBool("skip-bundle")
	env.Logger.Debug("initializing", "file", path, "skip_bundle", skipBundle)

	out := cmd.OutOrStdout()
	p := newPrompter(env.Config.Interactive, cmd.InOrStdin(), out)
	if _, ok := p.(*prompt.LinePrompter); ok {
		output.PrintSectionHeader(out, "Store settings")
	}

	in := &setup.Initializer{
		Prompter:        p,
		Themes:          theme.NewReader(env.Config.ThemeConfigFile),
		Bundler:         newBundler(env.Config, out, env.Logger),
		Out:             out,
		Logger:          env.Logger,
		ThemeConfigFile: env.Config.ThemeConfigFile,
		SkipBundle:      skipBundle,
	}
	return in.Run(cmd.Context(), path, env.ThemeDir)
}

// dotStencilPath returns --file when given, otherwise the settings file inside the theme directory.
func dotStencilPath(cmd *cobra.Command, env *commandEnv) (string, error) {
	raw, _ := cmd.Flags().GetString("file")
	if raw == "" {
		return filepath.Join(env.ThemeDir, env.Config.DotStencilFile), nil
	}
	path, err := ResolvePath(raw)
	if err != nil {
		return "", clierrors.Wrap(err, clierrors.Argument)
	}
	return path, nil
}

// newPrompter picks the huh form when both ends are a terminal (or the
// config forces it) and the line prompter otherwise.
func newPrompter(mode string, in io.Reader, out io.Writer) prompt.Prompter {
	useForm := false
	switch mode {
	case config.InteractiveAlways:
		useForm = true
	case config.InteractiveAuto:
		useForm = isTerminal(in) && isTerminal(out)
	}
	if useForm {
		return &prompt.FormPrompter{Title: "Store settings"}
	}
	return &prompt.LinePrompter{In: in, Out: out}
}

func newBundler(cfg *config.Loaded, out io.Writer, logger *log.Logger) *bundle.JspmAssembler {
	caps := progress.DetectTerminalCapabilities()
	caps.IsTTY = caps.IsTTY && cfg.ShowProgress && isTerminal(out)

	return &bundle.JspmAssembler{
		Command:  cfg.JspmCmd,
		Args:     cfg.JspmArgs,
		Timeout:  cfg.BundleTimeoutDuration(),
		Out:      out,
		Terminal: caps,
		Logger:   logger,
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
