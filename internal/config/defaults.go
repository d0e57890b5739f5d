package config

// GetDefaultConfigTemplate returns a commented user config template.
func GetDefaultConfigTemplate() string {
	return `# Stencil CLI configuration
# Environment variables (STENCIL_<KEY>) override these values.

dot_stencil_file: .stencil            # Local store settings file in the theme directory
theme_config_file: config.json        # Theme configuration file

jspm_cmd: jspm                        # jspm executable used for bundling
jspm_args: []                         # Arguments placed before "bundle ..."
bundle_timeout: 0                     # Bundle timeout in seconds (0 = no timeout)

show_progress: true                   # Show a spinner while bundling
interactive: auto                     # Prompt style: auto | always | never
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"dot_stencil_file":  ".stencil",
		"theme_config_file": "config.json",
		"jspm_cmd":          "jspm",
		"jspm_args":         []string{},
		"bundle_timeout":    0,
		"show_progress":     true,
		"interactive":       InteractiveAuto,
	}
}
