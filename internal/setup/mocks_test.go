package setup

import (
	"context"

	"github.com/stencil-dev/stencil-cli/internal/bundle"
	"github.com/stencil-dev/stencil-cli/internal/prompt"
	"github.com/stencil-dev/stencil-cli/internal/theme"
)

// fakePrompter returns fixed answers and records the questions it was asked.
type fakePrompter struct {
	answers prompt.Answers
	err     error
	asked   []prompt.Question
	calls   int
}

func (p *fakePrompter) Ask(_ context.Context, questions []prompt.Question) (prompt.Answers, error) {
	p.calls++
	p.asked = questions
	if p.err != nil {
		return nil, p.err
	}
	return p.answers, nil
}

type fakeThemes struct {
	cfg   *theme.Config
	err   error
	calls int
}

func (r *fakeThemes) Read(string) (*theme.Config, error) {
	r.calls++
	return r.cfg, r.err
}

// fakeBundler records Assemble calls and how many times the returned task ran.
type fakeBundler struct {
	err   error
	opts  []bundle.Options
	dirs  []string
	runs  int
	onRun func()
}

func (b *fakeBundler) Assemble(opts bundle.Options, themeDir string) bundle.Task {
	b.opts = append(b.opts, opts)
	b.dirs = append(b.dirs, themeDir)
	return func(context.Context) error {
		b.runs++
		if b.onRun != nil {
			b.onRun()
		}
		return b.err
	}
}

func validAnswers() prompt.Answers {
	return prompt.Answers{
		"normalStoreUrl": "https://store.example.com",
		"port":           "3000",
		"username":       "dev",
		"token":          "secret-token",
	}
}
