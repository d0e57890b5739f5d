package cli

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	clierrors "github.com/stencil-dev/stencil-cli/internal/errors"
)

// ResolvePath converts a raw path argument to an absolute path.
// It handles the following cases:
//   - Empty string or ".": returns current working directory
//   - "~" or "~/...": expands tilde to user home directory
//   - Relative path: resolves against current working directory
//   - Absolute path: returns unchanged
func ResolvePath(rawPath string) (string, error) {
	if rawPath == "" || rawPath == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return cwd, nil
	}

	if strings.HasPrefix(rawPath, "~") {
		expanded, err := expandTilde(rawPath)
		if err != nil {
			return "", fmt.Errorf("expanding tilde in path: %w", err)
		}
		rawPath = expanded
	}

	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return absPath, nil
}

// expandTilde expands a leading "~" or "~/" to the user's home directory.
// "~user" forms are returned unchanged.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	if path == "~" {
		return u.HomeDir, nil
	}
	return filepath.Join(u.HomeDir, path[2:]), nil
}

// resolveThemeDir resolves the --theme-dir value and checks it is an existing directory.
func resolveThemeDir(raw string) (string, error) {
	dir, err := ResolvePath(raw)
	if err != nil {
		return "", clierrors.Wrap(err, clierrors.Argument)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", clierrors.DirectoryNotFound(dir)
	}
	if !info.IsDir() {
		return "", clierrors.NewArgumentError(
			fmt.Sprintf("not a directory: %s", dir),
			"Pass the theme root with --theme-dir",
		)
	}
	return dir, nil
}
