// Package theme reads a theme's config.json.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigFile is the theme configuration file name inside a theme directory.
const DefaultConfigFile = "config.json"

// Config is the part of a theme's config.json the CLI acts on.
type Config struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`

	// Jspm is the bundling section. nil when the theme does not bundle with jspm.
	Jspm *JspmConfig `koanf:"jspm"`
}

// JspmConfig describes where jspm keeps its packages and how to bundle.
type JspmConfig struct {
	// PackagesPath is the jspm_packages directory, relative to the theme directory.
	PackagesPath   string        `koanf:"jspm_packages_path"`
	ConfigPath     string        `koanf:"config_path"`
	BundleLocation string        `koanf:"bundle_location"`
	Dev            JspmDevConfig `koanf:"dev"`
}

// JspmDevConfig holds development bundle settings.
type JspmDevConfig struct {
	// Bootstrap is the entry module whose dependencies are bundled for development.
	Bootstrap string `koanf:"bootstrap"`
	// DepLocation is the dependency bundle file, relative to the theme directory.
	DepLocation string `koanf:"dep_location"`
}

// HasBundling reports whether the theme declares a jspm section.
func (c *Config) HasBundling() bool {
	return c != nil && c.Jspm != nil
}

// PackagesDir returns the location of the jspm packages directory inside
// themeDir, or "" when the theme does not set one.
func (c *Config) PackagesDir(themeDir string) string {
	if !c.HasBundling() || strings.TrimSpace(c.Jspm.PackagesPath) == "" {
		return ""
	}
	return filepath.Join(themeDir, c.Jspm.PackagesPath)
}

// Reader loads theme configuration from a theme directory.
type Reader struct {
	// FileName overrides DefaultConfigFile.
	FileName string
}

// NewReader returns a Reader for the given file name. An empty name means DefaultConfigFile.
func NewReader(fileName string) *Reader {
	return &Reader{FileName: fileName}
}

// Path returns the config file location inside themeDir.
func (r *Reader) Path(themeDir string) string {
	name := DefaultConfigFile
	if r != nil && r.FileName != "" {
		name = r.FileName
	}
	return filepath.Join(themeDir, name)
}

// Read parses the theme configuration in themeDir.
func (r *Reader) Read(themeDir string) (*Config, error) {
	path := r.Path(themeDir)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("theme config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme config %s: %w", path, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding theme config %s: %w", path, err)
	}
	return &cfg, nil
}
