package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/stencil-dev/stencil-cli/internal/bundle"
	"github.com/stencil-dev/stencil-cli/internal/dotstencil"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
	"github.com/stencil-dev/stencil-cli/internal/output"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
	"github.com/stencil-dev/stencil-cli/internal/theme"
)

// ReadyMessage is printed once setup has fully completed.
const ReadyMessage = "You are now ready to go! To start developing, run $ stencil start"

// ThemeConfigReader loads the configuration of the theme in themeDir.
type ThemeConfigReader interface {
	Read(themeDir string) (*theme.Config, error)
}

// Initializer runs one setup pass. Prompter, Themes and Bundler are required.
type Initializer struct {
	Prompter prompt.Prompter
	Themes   ThemeConfigReader
	Bundler  bundle.Bundler

	// Out receives status lines. nil discards them.
	Out    io.Writer
	Logger *log.Logger

	// ThemeConfigFile names the theme config in error guidance. Empty means theme.DefaultConfigFile.
	ThemeConfigFile string
	// SkipBundle saves the settings without running the bundle step.
	SkipBundle bool
}

// Run loads dotStencilPath, asks for store settings, saves the merged result
// and bundles the theme in themeDir when it declares a jspm section.
//
// Errors are *errors.CLIError values: a malformed existing file stops the run
// before any prompt, a write failure stops it before bundling, and a missing
// jspm packages directory stops it after the file is written.
func (in *Initializer) Run(ctx context.Context, dotStencilPath, themeDir string) error {
	prior, err := dotstencil.Load(dotStencilPath)
	if err != nil {
		var pe *dotstencil.ParseError
		if errors.As(err, &pe) {
			return clierrors.ConfigParseError(dotStencilPath, pe)
		}
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "reading existing settings")
	}
	if prior != nil {
		in.logger().Debug("loaded existing settings", "path", dotStencilPath, "keys", prior.Keys())
	}

	answers, err := in.Prompter.Ask(ctx, Questions(prior))
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			return clierrors.PromptCancelled()
		}
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "collecting answers")
	}

	values, err := AnswerValues(answers)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "collecting answers")
	}
	dotstencil.EnsureCustomLayouts(prior, values)

	merged, err := dotstencil.Merge(prior, values)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "merging settings")
	}
	if err := dotstencil.Save(dotStencilPath, merged); err != nil {
		return clierrors.ConfigWriteError(dotStencilPath, err)
	}
	output.PrintSuccess(in.out(), fmt.Sprintf("Settings saved to %s", dotStencilPath))

	if in.SkipBundle {
		in.logger().Debug("bundling skipped")
		output.PrintReady(in.out(), ReadyMessage)
		return nil
	}
	return in.bundle(ctx, themeDir)
}

// bundle builds dev dependencies when the theme asks for it, then prints the ready message.
func (in *Initializer) bundle(ctx context.Context, themeDir string) error {
	cfg, err := in.Themes.Read(themeDir)
	if err != nil {
		return clierrors.ThemeConfigError(err)
	}

	if !cfg.HasBundling() {
		in.logger().Debug("theme has no jspm section")
		output.PrintReady(in.out(), ReadyMessage)
		return nil
	}

	packagesDir := cfg.PackagesDir(themeDir)
	if packagesDir == "" {
		in.logger().Debug("jspm packages path not set")
		return clierrors.PackagesPathNotFound("", in.themeConfigFile())
	}
	if _, err := os.Stat(packagesDir); err != nil {
		in.logger().Debug("jspm packages directory missing", "path", packagesDir, "err", err)
		return clierrors.PackagesPathNotFound(packagesDir, in.themeConfigFile())
	}

	task := in.Bundler.Assemble(bundle.Options{
		Bootstrap: cfg.Jspm.Dev.Bootstrap,
		Output:    cfg.Jspm.Dev.DepLocation,
	}, themeDir)

	if err := task(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return clierrors.Wrap(err, clierrors.Runtime)
		}
		return clierrors.BundleError(err)
	}

	output.PrintReady(in.out(), ReadyMessage)
	return nil
}

func (in *Initializer) out() io.Writer {
	if in.Out == nil {
		return io.Discard
	}
	return in.Out
}

func (in *Initializer) logger() *log.Logger {
	if in.Logger == nil {
		return log.New(io.Discard)
	}
	return in.Logger
}

func (in *Initializer) themeConfigFile() string {
	if in.ThemeConfigFile == "" {
		return theme.DefaultConfigFile
	}
	return in.ThemeConfigFile
}
