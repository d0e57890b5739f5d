package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner shows an animated message while a step runs and a status line when it ends.
// On a non-TTY only the final status line is printed. A nil *Spinner is a no-op.
type Spinner struct {
	out     io.Writer
	message string
	symbols ProgressSymbols
	s       *spinner.Spinner
}

// NewSpinner creates a Spinner writing to out. Animation is enabled when caps.IsTTY is set.
func NewSpinner(out io.Writer, caps TerminalCapabilities, message string) *Spinner {
	sp := &Spinner{
		out:     out,
		message: message,
		symbols: SelectSymbols(caps),
	}
	if caps.IsTTY {
		sp.s = spinner.New(spinner.CharSets[sp.symbols.SpinnerSet], spinnerInterval, spinner.WithWriter(out))
		sp.s.Suffix = " " + message
	}
	return sp
}

// Start begins the animation.
func (sp *Spinner) Start() {
	if sp == nil || sp.s == nil {
		return
	}
	sp.s.Start()
}

// Success stops the animation and prints a completed line.
func (sp *Spinner) Success() {
	if sp == nil {
		return
	}
	sp.finish(sp.symbols.Checkmark)
}

// Fail stops the animation and prints a failed line.
func (sp *Spinner) Fail() {
	if sp == nil {
		return
	}
	sp.finish(sp.symbols.Failure)
}

func (sp *Spinner) finish(symbol string) {
	if sp.s != nil {
		sp.s.Stop()
	}
	fmt.Fprintf(sp.out, "%s %s\n", symbol, sp.message)
}
