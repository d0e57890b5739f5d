package errors

import "fmt"

// Common error messages for the stencil CLI.
// These templates ensure consistent, actionable error messages.

// PackagesPathKey is the theme config.json setting that locates jspm packages.
const PackagesPathKey = "jspm.jspm_packages_path"

// ConfigParseError creates an error for a malformed .stencil file.
// err is expected to name the file and the location of the problem.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse %v", err),
		"Check the file for JSON syntax errors",
		"Validate with: jq . "+path,
		"Or delete the file and run 'stencil init' again",
	)
}

// ConfigWriteError creates an error when the .stencil file cannot be persisted.
func ConfigWriteError(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write to file: %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure parent directory exists and is writable",
	)
}

// PackagesPathNotFound creates an error for a jspm packages directory that does not exist.
// An empty path means the setting is missing. configFile is the theme config file the setting lives in.
func PackagesPathNotFound(path, configFile string) *CLIError {
	if path == "" {
		path = "(not set)"
	}
	return NewConfigError(
		fmt.Sprintf("The path you specified for your \"jspm_packages\" folder does not exist: %s", path),
		fmt.Sprintf("Please check your %s setting in your theme's %s file to make sure it's correct", PackagesPathKey, configFile),
		"Run 'jspm install' if the packages have not been installed yet",
	)
}

// ThemeConfigError creates an error for a theme config file that cannot be read.
func ThemeConfigError(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		"failed to read theme config",
		"Run 'stencil init' from the root of your theme",
		"Or pass the theme location with --theme-dir",
	)
}

// BundleError creates an error when the jspm bundle step fails.
func BundleError(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"bundling dev dependencies failed",
		"Check that jspm is installed: jspm --version",
		"Set a different executable with STENCIL_JSPM_CMD",
		"Your .stencil file was saved; rerun 'stencil init' to retry bundling",
	)
}

// ToolConfigError creates an error for an invalid stencil tool configuration.
func ToolConfigError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid stencil configuration",
		"Check ~/.config/stencil/config.yml and STENCIL_* environment variables",
		"Show the effective settings with: stencil config show",
	)
}

// DirectoryNotFound creates an error for missing directory.
func DirectoryNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("directory not found: %s", path),
		"Create the directory with: mkdir -p "+path,
		"Or check that the path is correct",
	)
}

// InvalidFlagValue creates an error for a flag value outside its allowed set.
func InvalidFlagValue(flag, value string, allowed ...string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid value %q for --%s", value, flag),
		fmt.Sprintf("Valid values: %v", allowed),
		"Use 'stencil <command> --help' to see valid options",
	)
}

// PromptCancelled creates an error when the user aborts the interactive prompt.
func PromptCancelled() *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     "setup cancelled, nothing was written",
		Remediation: []string{"Run 'stencil init' again when you are ready"},
		Err:         ErrInterrupted,
	}
}
