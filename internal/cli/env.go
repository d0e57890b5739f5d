package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stencil-dev/stencil-cli/internal/config"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
)

// commandEnv is what every theme command needs before it can do work.
type commandEnv struct {
	ThemeDir string
	Config   *config.Loaded
	Logger   *log.Logger
}

// newCommandEnv reads the persistent flags, loads the tool config and resolves the theme directory.
func newCommandEnv(cmd *cobra.Command) (*commandEnv, error) {
	logger := commandLogger(cmd)

	cfg, err := loadToolConfig(cmd, logger)
	if err != nil {
		return nil, err
	}

	raw, _ := cmd.Flags().GetString("theme-dir")
	themeDir, err := resolveThemeDir(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("theme directory", "path", themeDir)

	return &commandEnv{ThemeDir: themeDir, Config: cfg, Logger: logger}, nil
}

func commandLogger(cmd *cobra.Command) *log.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return newLogger(cmd.ErrOrStderr(), debug)
}

// newLogger returns a stderr logger at warn level, or debug level with --debug.
func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "stencil",
	})
}

func loadToolConfig(cmd *cobra.Command, logger *log.Logger) (*config.Loaded, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		resolved, err := ResolvePath(path)
		if err != nil {
			return nil, clierrors.Wrap(err, clierrors.Argument)
		}
		path = resolved
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{UserConfigPath: path})
	if err != nil {
		return nil, clierrors.ToolConfigError(err)
	}
	logger.Debug("loaded tool config", "file", cfg.UserConfigPath, "sources", len(cfg.Sources))
	return cfg, nil
}
