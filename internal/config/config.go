// Package config provides layered configuration for the stencil CLI using koanf.
// Configuration is loaded with priority: environment variables (STENCIL_*)
// > user config (~/.config/stencil/config.yml) > defaults.
//
// This is the tool's own configuration. The per-theme .stencil file is
// handled by the dotstencil package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceUser    ConfigSource = "user"
	SourceEnv     ConfigSource = "env"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "STENCIL_"

// Interactive modes.
const (
	InteractiveAuto   = "auto"
	InteractiveAlways = "always"
	InteractiveNever  = "never"
)

// Configuration represents the stencil CLI tool configuration
type Configuration struct {
	// DotStencilFile is the local settings file name inside the theme directory.
	DotStencilFile string `koanf:"dot_stencil_file" yaml:"dot_stencil_file" json:"dot_stencil_file" validate:"required"`
	// ThemeConfigFile is the theme configuration file name inside the theme directory.
	ThemeConfigFile string `koanf:"theme_config_file" yaml:"theme_config_file" json:"theme_config_file" validate:"required"`

	// JspmCmd is the jspm executable. JspmArgs are passed before the bundle arguments.
	JspmCmd  string   `koanf:"jspm_cmd" yaml:"jspm_cmd" json:"jspm_cmd" validate:"required"`
	JspmArgs []string `koanf:"jspm_args" yaml:"jspm_args" json:"jspm_args"`

	// BundleTimeout in seconds (0 = no timeout).
	BundleTimeout int `koanf:"bundle_timeout" yaml:"bundle_timeout" json:"bundle_timeout" validate:"min=0"`

	ShowProgress bool `koanf:"show_progress" yaml:"show_progress" json:"show_progress"`

	// Interactive selects the prompt style: auto (form on a terminal, lines otherwise),
	// always (form) or never (lines).
	Interactive string `koanf:"interactive" yaml:"interactive" json:"interactive" validate:"oneof=auto always never"`
}

// BundleTimeoutDuration returns BundleTimeout as a time.Duration.
func (c *Configuration) BundleTimeoutDuration() time.Duration {
	return time.Duration(c.BundleTimeout) * time.Second
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// UserConfigPath overrides the user config path (default: UserConfigPath()).
	UserConfigPath string
	// SkipUserConfig ignores the user config file entirely.
	SkipUserConfig bool
}

// Loaded is a Configuration together with the source of each key.
type Loaded struct {
	*Configuration
	Sources map[string]ConfigSource
	// UserConfigPath is the user file that was read, empty when none was.
	UserConfigPath string
}

// Load loads configuration from defaults, the user config file and environment.
func Load() (*Loaded, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Loaded, error) {
	k := koanf.New(".")
	sources := make(map[string]ConfigSource)

	loadDefaults(k, sources)

	userPath, err := loadUserConfig(k, opts, sources)
	if err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k, sources); err != nil {
		return nil, err
	}

	cfg, err := finalizeConfig(k, userPath)
	if err != nil {
		return nil, err
	}
	return &Loaded{Configuration: cfg, Sources: sources, UserConfigPath: userPath}, nil
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf, sources map[string]ConfigSource) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
		sources[key] = SourceDefault
	}
}

// loadUserConfig loads the user-level config file if present.
// The parser is chosen by extension: .json uses JSON, anything else YAML.
func loadUserConfig(k *koanf.Koanf, opts LoadOptions, sources map[string]ConfigSource) (string, error) {
	if opts.SkipUserConfig {
		return "", nil
	}

	path := opts.UserConfigPath
	explicit := path != ""
	if !explicit {
		path, _ = UserConfigPath()
	}

	if !fileExists(path) {
		if explicit {
			return "", fmt.Errorf("config file not found: %s", path)
		}
		return "", nil
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	} else if err := ValidateYAMLSyntax(path); err != nil {
		return "", fmt.Errorf("validating YAML syntax for user config: %w", err)
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(path), parser); err != nil {
		return "", fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	for _, key := range fileK.Keys() {
		sources[key] = SourceUser
	}
	if err := k.Merge(fileK); err != nil {
		return "", fmt.Errorf("merging user config %s: %w", path, err)
	}
	return path, nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf, sources map[string]ConfigSource) error {
	envK := koanf.New(".")
	if err := envK.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	for _, key := range envK.Keys() {
		sources[key] = SourceEnv
	}
	if err := k.Merge(envK); err != nil {
		return fmt.Errorf("merging environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf, filePath string) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if filePath == "" {
		filePath = "config"
	}
	if err := ValidateConfigValues(&cfg, filePath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: STENCIL_BUNDLE_TIMEOUT -> bundle_timeout.
// STENCIL_JSPM_ARGS is split on whitespace. Variables that are not config keys are dropped.
func envTransform(key, value string) (string, interface{}) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if _, ok := GetDefaults()[name]; !ok {
		return "", nil
	}
	if name == "jspm_args" {
		return name, strings.Fields(value)
	}
	return name, value
}
