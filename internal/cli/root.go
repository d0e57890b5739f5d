// Package cli implements the stencil command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
)

// newRootCmd builds the stencil command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stencil",
		Short: "Local development tooling for Stencil themes",
		Long: `stencil connects a theme checkout to a store for local development.

Run 'stencil init' in the theme directory to save your store URL, port,
username and token to .stencil and bundle the theme's jspm dependencies.`,
		Example: `  # Configure the theme in the current directory
  stencil init

  # Configure a theme somewhere else
  stencil init --theme-dir ~/themes/cornerstone

  # Show the effective tool configuration
  stencil config show`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String("theme-dir", "", "Theme directory (default: current directory)")
	cmd.PersistentFlags().String("config", "", "Path to the stencil config file (default: ~/.config/stencil/config.yml)")
	cmd.PersistentFlags().Bool("debug", false, "Print debug diagnostics to stderr")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.Wrap(err, clierrors.Argument,
			"Run 'stencil "+c.Name()+" --help' to see valid flags")
	})

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the stencil CLI. Errors are printed to stderr before being returned.
// Interrupt and terminate signals cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		clierrors.FprintAny(root.ErrOrStderr(), err)
	}
	return err
}
