package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	assert.Equal(t, ".stencil", cfg.DotStencilFile)
	assert.Equal(t, "config.json", cfg.ThemeConfigFile)
	assert.Equal(t, "jspm", cfg.JspmCmd)
	assert.Empty(t, cfg.JspmArgs)
	assert.Equal(t, 0, cfg.BundleTimeout)
	assert.True(t, cfg.ShowProgress)
	assert.Equal(t, InteractiveAuto, cfg.Interactive)
	assert.Equal(t, SourceDefault, cfg.Sources["jspm_cmd"])
	assert.Empty(t, cfg.UserConfigPath)
}

func TestLoadWithOptions_UserYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("jspm_cmd: npx\njspm_args: [jspm]\nbundle_timeout: 30\n"), 0o644))

	cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "npx", cfg.JspmCmd)
	assert.Equal(t, []string{"jspm"}, cfg.JspmArgs)
	assert.Equal(t, 30*time.Second, cfg.BundleTimeoutDuration())
	assert.Equal(t, SourceUser, cfg.Sources["jspm_cmd"])
	assert.Equal(t, SourceDefault, cfg.Sources["dot_stencil_file"])
	assert.Equal(t, path, cfg.UserConfigPath)
}

func TestLoadWithOptions_UserJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_progress": false}`), 0o644))

	cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: path})
	require.NoError(t, err)

	assert.False(t, cfg.ShowProgress)
}

func TestLoadWithOptions_EnvOverridesUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("jspm_cmd: npx\n"), 0o644))
	t.Setenv("STENCIL_JSPM_CMD", "/opt/bin/jspm")
	t.Setenv("STENCIL_JSPM_ARGS", "--log warn")
	t.Setenv("STENCIL_BUNDLE_TIMEOUT", "15")
	t.Setenv("STENCIL_ASCII", "1")

	cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/jspm", cfg.JspmCmd)
	assert.Equal(t, []string{"--log", "warn"}, cfg.JspmArgs)
	assert.Equal(t, 15, cfg.BundleTimeout)
	assert.Equal(t, SourceEnv, cfg.Sources["jspm_cmd"])
	assert.NotContains(t, cfg.Sources, "ascii")
}

func TestLoadWithOptions_Errors(t *testing.T) {
	tests := map[string]struct {
		content string
		file    string
		wantErr string
	}{
		"invalid yaml": {
			content: "jspm_cmd: [unclosed\n",
			file:    "config.yml",
			wantErr: "validating YAML syntax",
		},
		"negative timeout": {
			content: "bundle_timeout: -1\n",
			file:    "config.yml",
			wantErr: "bundle_timeout",
		},
		"unknown interactive mode": {
			content: "interactive: sometimes\n",
			file:    "config.yml",
			wantErr: "must be one of: auto, always, never",
		},
		"path as dot stencil file": {
			content: "dot_stencil_file: ../elsewhere/.stencil\n",
			file:    "config.yml",
			wantErr: "must be a file name",
		},
		"empty jspm command": {
			content: `{"jspm_cmd": ""}`,
			file:    "config.json",
			wantErr: "jspm_cmd",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadWithOptions(LoadOptions{UserConfigPath: path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithOptions_ExplicitMissingFile(t *testing.T) {
	_, err := LoadWithOptions(LoadOptions{UserConfigPath: filepath.Join(t.TempDir(), "nope.yml")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content  string
		wantLine int // -1: any line
		wantMsg  string
	}{
		"mapping":         {content: "jspm_cmd: npx\n"},
		"empty file":      {content: ""},
		"unclosed flow":   {content: "jspm_cmd: npx\njspm_args: [a\n", wantLine: -1, wantMsg: "did not find expected"},
		"top-level list":  {content: "- jspm_cmd\n", wantLine: 1, wantMsg: "expected key: value settings"},
		"top-level value": {content: "\njspm\n", wantLine: 2, wantMsg: "expected key: value settings"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			err := ValidateYAMLSyntax(path)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			if tt.wantLine < 0 {
				assert.Positive(t, verr.Line)
			} else {
				assert.Equal(t, tt.wantLine, verr.Line)
			}
			assert.Contains(t, verr.Message, tt.wantMsg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestSplitYAMLError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		wantLine int
		wantMsg  string
	}{
		"with line":    {input: "yaml: line 5: could not find expected ':'", wantLine: 5, wantMsg: "could not find expected ':'"},
		"without line": {input: "yaml: control characters are not allowed", wantMsg: "control characters are not allowed"},
		"bad number":   {input: "yaml: line x: oops", wantMsg: "yaml: line x: oops"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			line, msg := splitYAMLError(tt.input)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidateConfigValues_FieldNames(t *testing.T) {
	t.Parallel()

	cfg := &Configuration{
		DotStencilFile:  ".stencil",
		ThemeConfigFile: "config.json",
		JspmCmd:         "jspm",
		BundleTimeout:   -5,
		Interactive:     InteractiveAuto,
	}

	err := ValidateConfigValues(cfg, "config.yml")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bundle_timeout", verr.Field)
	assert.Equal(t, "config.yml: bundle_timeout must be at least 0", err.Error())
}

func TestGetDefaultConfigTemplate_CoversDefaults(t *testing.T) {
	t.Parallel()

	tmpl := GetDefaultConfigTemplate()
	for key := range GetDefaults() {
		assert.Contains(t, tmpl, key+":")
	}
}
