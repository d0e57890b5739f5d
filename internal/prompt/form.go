package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks questions through an interactive huh form.
type FormPrompter struct {
	// Title is shown above the questions.
	Title string
}

// Ask implements Prompter.
func (p *FormPrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	values := make([]string, len(questions))
	fields := make([]huh.Field, 0, len(questions))

	for i, q := range questions {
		values[i] = q.Default
		fields = append(fields, newInput(q, &values[i]))
	}

	group := huh.NewGroup(fields...)
	if p.Title != "" {
		group = group.Title(p.Title)
	}

	if err := huh.NewForm(group).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("running form: %w", err)
	}

	answers := make(Answers, len(questions))
	for i, q := range questions {
		answers[q.Key] = strings.TrimSpace(values[i])
	}
	return answers, nil
}

func newInput(q Question, value *string) *huh.Input {
	input := huh.NewInput().
		Key(q.Key).
		Title(q.Message).
		Value(value).
		Validate(func(s string) error {
			return q.validate(strings.TrimSpace(s))
		})
	if q.Secret {
		input = input.EchoMode(huh.EchoModePassword)
	}
	if q.Default != "" && !q.Secret {
		input = input.Placeholder(q.Default)
	}
	return input
}
