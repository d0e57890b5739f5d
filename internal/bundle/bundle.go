// Package bundle builds a theme's development dependency bundle with jspm.
package bundle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stencil-dev/stencil-cli/internal/progress"
)

// DefaultCommand is the jspm executable looked up on PATH.
const DefaultCommand = "jspm"

// DefaultOutput is where the dependency bundle is written when the theme does not say.
const DefaultOutput = "assets/js/dependency-bundle.js"

// ErrNoBootstrap is returned when there is no module to bundle.
var ErrNoBootstrap = errors.New("no bootstrap module configured (jspm.dev.bootstrap)")

// Options selects what to bundle.
type Options struct {
	// Bootstrap is the entry module whose dependencies are bundled.
	Bootstrap string
	// Output is the bundle file, relative to the theme directory.
	Output string
}

// Task performs a prepared bundle and returns when it has finished.
type Task func(ctx context.Context) error

// Bundler prepares bundle tasks for a theme directory.
type Bundler interface {
	Assemble(opts Options, themeDir string) Task
}

// JspmAssembler runs `jspm bundle` in the theme directory.
type JspmAssembler struct {
	// Command is the executable to run. Empty means DefaultCommand.
	Command string
	// Args are placed before the bundle arguments, e.g. ["jspm"] when Command is "npx".
	Args []string
	// Env is appended to the current environment.
	Env []string
	// Timeout bounds a single bundle run. Zero disables it.
	Timeout time.Duration
	// Out receives progress lines. nil discards them.
	Out io.Writer
	// Terminal controls spinner animation.
	Terminal progress.TerminalCapabilities
	Logger   *log.Logger
}

// Assemble implements Bundler.
func (a *JspmAssembler) Assemble(opts Options, themeDir string) Task {
	return func(ctx context.Context) error {
		return a.run(ctx, opts, themeDir)
	}
}

// BundleArgs returns the jspm arguments that bundle the dependencies of
// opts.Bootstrap, leaving out the module itself.
func BundleArgs(opts Options) []string {
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	expr := fmt.Sprintf("%s - [%s]", opts.Bootstrap, opts.Bootstrap)
	return []string{"bundle", expr, output, "--minify"}
}

func (a *JspmAssembler) run(ctx context.Context, opts Options, themeDir string) error {
	if strings.TrimSpace(opts.Bootstrap) == "" {
		return ErrNoBootstrap
	}

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	name := a.Command
	if name == "" {
		name = DefaultCommand
	}
	args := append(append([]string{}, a.Args...), BundleArgs(opts)...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = themeDir
	cmd.Env = append(os.Environ(), a.Env...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	a.logger().Debug("running bundler", "cmd", name, "args", strings.Join(args, " "), "dir", themeDir)

	sp := progress.NewSpinner(a.out(), a.Terminal, "Bundling dev dependencies")
	sp.Start()
	start := time.Now()
	err := cmd.Run()
	if err != nil {
		sp.Fail()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s bundle timed out after %s", name, a.Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s bundle: %w: %s", name, err, lastLine(msg))
		}
		return fmt.Errorf("%s bundle: %w", name, err)
	}
	sp.Success()

	a.logger().Debug("bundle finished", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (a *JspmAssembler) out() io.Writer {
	if a.Out == nil {
		return io.Discard
	}
	return a.Out
}

func (a *JspmAssembler) logger() *log.Logger {
	if a.Logger == nil {
		return log.New(io.Discard)
	}
	return a.Logger
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
