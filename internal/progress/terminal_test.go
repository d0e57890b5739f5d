package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps        TerminalCapabilities
		wantCheck   string
		wantFailure string
		wantSet     int
	}{
		"unicode terminal": {
			caps:        TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			wantCheck:   "✓",
			wantFailure: "✗",
			wantSet:     14,
		},
		"ascii fallback": {
			caps:        TerminalCapabilities{},
			wantCheck:   "[OK]",
			wantFailure: "[FAIL]",
			wantSet:     9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := SelectSymbols(tt.caps)
			assert.Equal(t, tt.wantCheck, got.Checkmark)
			assert.Equal(t, tt.wantFailure, got.Failure)
			assert.Equal(t, tt.wantSet, got.SpinnerSet)
		})
	}
}

func TestSpinner_NonTTYPrintsStatusOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sp := NewSpinner(&buf, TerminalCapabilities{}, "Bundling dev dependencies")
	sp.Start()
	sp.Success()

	assert.Equal(t, "[OK] Bundling dev dependencies\n", buf.String())

	buf.Reset()
	sp.Fail()
	assert.Equal(t, "[FAIL] Bundling dev dependencies\n", buf.String())
}

func TestSpinner_NilIsNoop(t *testing.T) {
	t.Parallel()

	var sp *Spinner
	assert.NotPanics(t, func() {
		sp.Start()
		sp.Success()
		sp.Fail()
	})
}
