// Package output provides terminal output formatting utilities for the stencil CLI.
// This package is designed to have minimal dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintSectionHeader prints a dim rule with a cyan title, used to introduce the prompts.
func PrintSectionHeader(out io.Writer, title string) {
	dim := color.New(color.Faint).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	line := strings.Repeat("-", 10)
	fmt.Fprintf(out, "\n%s %s %s\n\n", dim(line), cyan(title), dim(line))
}

// PrintSuccess prints a green checkmark followed by message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintReady prints the final call to action after setup completes.
func PrintReady(out io.Writer, message string) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "\n%s\n", green(message))
}

// PrintKeyValue prints an aligned "key: value" line with a dim source annotation.
func PrintKeyValue(out io.Writer, key, value, source string, width int) {
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	pad := strings.Repeat(" ", max(width-len(key), 0))
	fmt.Fprintf(out, "%s:%s %s %s\n", cyan(key), pad, value, dim("("+source+")"))
}
