package theme

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeThemeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0o644))
}

func TestReader_Read(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content       string
		wantBundling  bool
		wantPackages  string
		wantBootstrap string
	}{
		"with jspm section": {
			content: `{
  "name": "Cornerstone",
  "version": "1.0.0",
  "jspm": {
    "dev": {"dep_location": "assets/js/dependency-bundle.js", "bootstrap": "js/app"},
    "bundle_location": "assets/js/bundle.js",
    "jspm_packages_path": "assets/jspm_packages",
    "config_path": "assets/js/jspm_config.js"
  }
}`,
			wantBundling:  true,
			wantPackages:  "assets/jspm_packages",
			wantBootstrap: "js/app",
		},
		"without jspm section": {
			content:      `{"name": "Blueprint", "version": "2.0.0"}`,
			wantBundling: false,
		},
		"null jspm section": {
			content:      `{"name": "Blueprint", "jspm": null}`,
			wantBundling: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeThemeConfig(t, dir, tt.content)

			cfg, err := NewReader("").Read(dir)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBundling, cfg.HasBundling())
			if tt.wantBundling {
				assert.Equal(t, tt.wantPackages, cfg.Jspm.PackagesPath)
				assert.Equal(t, tt.wantBootstrap, cfg.Jspm.Dev.Bootstrap)
				assert.Equal(t, "assets/js/dependency-bundle.js", cfg.Jspm.Dev.DepLocation)
				assert.Equal(t, filepath.Join(dir, tt.wantPackages), cfg.PackagesDir(dir))
			} else {
				assert.Empty(t, cfg.PackagesDir(dir))
			}
		})
	}
}

func TestConfig_PackagesDirUnset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeThemeConfig(t, dir, `{"jspm": {"dev": {"bootstrap": "js/app"}}}`)

	cfg, err := NewReader("").Read(dir)
	require.NoError(t, err)

	assert.True(t, cfg.HasBundling())
	assert.Empty(t, cfg.PackagesDir(dir))
}

func TestReader_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewReader("").Read(t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReader_InvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeThemeConfig(t, dir, `{"jspm": `)

	_, err := NewReader("").Read(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading theme config")
}

func TestReader_CustomFileName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte(`{"name": "x"}`), 0o644))

	cfg, err := NewReader("theme.json").Read(dir)

	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Name)
}
