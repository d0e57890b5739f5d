package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/cancelreader"
)

var (
	cQuestion = color.New(color.FgGreen, color.Bold).SprintFunc()
	cDefault  = color.New(color.Faint).SprintFunc()
	cInvalid  = color.New(color.FgRed).SprintFunc()
)

// LinePrompter reads answers line by line from In and writes questions to Out.
// An empty line accepts the default. Invalid answers are reported and asked again.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Prompter. Cancelling ctx ends a pending read and returns ctx.Err().
func (p *LinePrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	feed := readLines(p.In)
	defer feed.stop()

	answers := make(Answers, len(questions))
	for _, q := range questions {
		val, err := p.askOne(ctx, feed, q)
		if err != nil {
			return nil, err
		}
		answers[q.Key] = val
	}
	return answers, nil
}

func (p *LinePrompter) askOne(ctx context.Context, feed *lineFeed, q Question) (string, error) {
	for {
		fmt.Fprintf(p.Out, "%s %s%s ", cQuestion("?"), q.Message, formatDefault(q))

		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.Out)
			return "", ctx.Err()
		case res = <-feed.lines:
		}

		eof := errors.Is(res.err, io.EOF)
		if res.err != nil && !eof {
			return "", fmt.Errorf("reading answer for %s: %w", q.Key, res.err)
		}
		if eof && res.line == "" {
			fmt.Fprintln(p.Out)
			return "", ErrAborted
		}

		val := strings.TrimSpace(res.line)
		if val == "" {
			val = q.Default
		}

		if err := q.validate(val); err != nil {
			fmt.Fprintf(p.Out, "%s %s\n", cInvalid(">>"), err)
			if eof {
				return "", ErrAborted
			}
			continue
		}
		return val, nil
	}
}

type lineResult struct {
	line string
	err  error
}

// lineFeed reads lines on its own goroutine so a prompt can wait on input and
// a context at the same time. After the first read error every receive gets
// that error.
type lineFeed struct {
	lines  chan lineResult
	done   chan struct{}
	cancel func()
}

// readLines starts reading r. Terminals and pipes backed by a file descriptor
// are wrapped in a cancelreader so stop also releases a blocked read.
func readLines(r io.Reader) *lineFeed {
	f := &lineFeed{
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
		cancel: func() {},
	}

	var closer io.Closer
	if cr, err := cancelreader.NewReader(r); err == nil {
		r = cr
		closer = cr
		f.cancel = func() { cr.Cancel() }
	}

	go f.run(r, closer)
	return f
}

func (f *lineFeed) run(r io.Reader, closer io.Closer) {
	if closer != nil {
		defer closer.Close()
	}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if !f.send(lineResult{line: line, err: err}) {
			return
		}
		if err != nil {
			for f.send(lineResult{err: err}) {
			}
			return
		}
	}
}

func (f *lineFeed) send(res lineResult) bool {
	select {
	case f.lines <- res:
		return true
	case <-f.done:
		return false
	}
}

func (f *lineFeed) stop() {
	close(f.done)
	f.cancel()
}

func formatDefault(q Question) string {
	switch {
	case q.Default == "":
		return ""
	case q.Secret:
		return " " + cDefault("(****)")
	default:
		return " " + cDefault("("+q.Default+")")
	}
}
