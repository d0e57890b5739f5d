// Package prompt asks the user an ordered list of questions.
//
// FormPrompter renders the questions as a charmbracelet/huh form and is used
// when stdin is a terminal. LinePrompter reads one answer per line and is used
// for piped input and in tests.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user cancels the prompt or input ends early.
var ErrAborted = errors.New("prompt aborted")

// Question is a single prompt.
type Question struct {
	// Key names the answer in the returned Answers.
	Key string
	// Message is the text shown to the user.
	Message string
	// Default is used when the user submits an empty answer.
	Default string
	// Secret hides the typed characters.
	Secret bool
	// Validate rejects an answer with a message the user sees before being asked again.
	Validate func(string) error
}

// Answers maps Question.Key to the accepted answer.
type Answers map[string]string

// Prompter asks questions in order and returns once every one is answered.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

func (q Question) validate(val string) error {
	if q.Validate == nil {
		return nil
	}
	return q.Validate(val)
}
