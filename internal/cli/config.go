package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/stencil-dev/stencil-cli/internal/config"
	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
	"github.com/stencil-dev/stencil-cli/internal/output"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stencil tool configuration",
		Long: `Manage stencil tool configuration settings.

These settings control the CLI itself, not the store settings in .stencil.
They are loaded with the following priority (highest to lowest):
  1. Environment variables (STENCIL_*)
  2. User config (~/.config/stencil/config.yml, or --config)
  3. Built-in defaults`,
		Example: `  # Show the effective configuration
  stencil config show

  # Show it as JSON
  stencil config show --format json

  # Write a commented config file to edit
  stencil config init`,
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cmd.Flags().String("format", "yaml", "Output format: yaml or json")
	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "yaml" && format != "json" {
		return clierrors.InvalidFlagValue("format", format, "yaml", "json")
	}

	cfg, err := loadToolConfig(cmd, commandLogger(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.Configuration)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Configuration); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return printSources(out, cfg)
}

// printSources lists every key with its value and the layer it was taken from.
func printSources(out io.Writer, cfg *config.Loaded) error {
	values, err := configValues(cfg.Configuration)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(values))
	width := 0
	for key := range values {
		keys = append(keys, key)
		width = max(width, len(key))
	}
	sort.Strings(keys)

	output.PrintSectionHeader(out, "Configuration Sources")
	for _, key := range keys {
		source := cfg.Sources[key]
		if source == "" {
			source = config.SourceDefault
		}
		output.PrintKeyValue(out, key, fmt.Sprint(values[key]), string(source), width)
	}
	if cfg.UserConfigPath != "" {
		fmt.Fprintf(out, "\nUser config: %s\n", cfg.UserConfigPath)
	}
	return nil
}

// configValues flattens cfg into its yaml keys.
func configValues(cfg *config.Configuration) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return values, nil
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented user config file",
		Long: `Write a commented config file with the default values to
~/.config/stencil/config.yml (or the --config path).

An existing file is left unchanged unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	var err error
	if path != "" {
		path, err = ResolvePath(path)
	} else {
		path, err = config.UserConfigPath()
	}
	if err != nil {
		return clierrors.Wrap(err, clierrors.Argument)
	}

	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.ConfigWriteError(path, err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.ConfigWriteError(path, err)
	}
	output.PrintSuccess(out, fmt.Sprintf("Created config at %s", path))
	return nil
}
