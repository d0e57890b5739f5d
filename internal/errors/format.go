package errors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
	keyFmt      = color.New(color.FgCyan).SprintFunc()
)

// FormatError formats a CLIError for display in the terminal.
// Colors are dropped automatically when stdout is not a terminal or NO_COLOR is set.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, !color.NoColor)
}

// FormatErrorPlain formats a CLIError without colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return formatError(err, false)
}

func formatError(err *CLIError, useColors bool) string {
	var sb strings.Builder

	if useColors {
		sb.WriteString(errorLabel("Error"))
		sb.WriteString(" [")
		sb.WriteString(categoryFmt(err.Category.String()))
		sb.WriteString("]: ")
		sb.WriteString(errorMsg(err.Message))
	} else {
		sb.WriteString("Error [")
		sb.WriteString(err.Category.String())
		sb.WriteString("]: ")
		sb.WriteString(err.Message)
	}
	sb.WriteString("\n")

	if len(err.Remediation) == 0 {
		return sb.String()
	}

	sb.WriteString("\n")
	if useColors {
		sb.WriteString(fixLabel("To fix this:"))
	} else {
		sb.WriteString("To fix this:")
	}
	sb.WriteString("\n")
	for _, step := range err.Remediation {
		if useColors {
			sb.WriteString("  ")
			sb.WriteString(bullet("•"))
			sb.WriteString(" ")
			sb.WriteString(highlightKey(step))
		} else {
			sb.WriteString("  • ")
			sb.WriteString(step)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// highlightKey colors the packages path setting name so it stands out in guidance text.
func highlightKey(step string) string {
	return strings.ReplaceAll(step, PackagesPathKey, keyFmt(PackagesPathKey))
}

// PrintError prints a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError prints a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// FprintAny prints err to w, formatting it as a CLIError when one is in the chain
// and as a Runtime error otherwise.
func FprintAny(w io.Writer, err error) {
	if err == nil {
		return
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		FprintError(w, cliErr)
		return
	}
	FprintError(w, &CLIError{Category: Runtime, Message: err.Error(), Err: err})
}

// Exit codes for the stencil CLI.
const (
	ExitSuccess       = 0
	ExitRuntime       = 1
	ExitConfiguration = 2
	ExitArgument      = 3
	ExitPrerequisite  = 4
	ExitInterrupted   = 130
)

// ExitCode maps an error to the process exit code.
// Plain errors exit with ExitRuntime, context cancellation with ExitInterrupted.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		return ExitRuntime
	}
	switch cliErr.Category {
	case Argument:
		return ExitArgument
	case Configuration:
		return ExitConfiguration
	case Prerequisite:
		return ExitPrerequisite
	default:
		return ExitRuntime
	}
}
