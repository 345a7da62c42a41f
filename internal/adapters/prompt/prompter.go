// Package prompt asks the operator questions on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/rosbrew/internal/adapters/detector"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/rosbrew/internal/ui/output"
	"go.trai.ch/rosbrew/internal/ui/style"
)

// Prompter implements ports.Prompter by reading answers line by line.
type Prompter struct {
	in   *bufio.Reader
	out  *termenv.Output
	mode detector.InteractionMode

	// pending holds a read that outlived a cancelled Choose.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

var _ ports.Prompter = (*Prompter)(nil)

// New creates a Prompter on stdin and stderr.
// It only asks when stdin is a terminal outside of CI.
func New() *Prompter {
	return NewWithIO(os.Stdin, os.Stderr, detector.DetectEnvironment(os.Stdin))
}

// NewWithIO creates a Prompter reading from in and writing questions to out.
func NewWithIO(in io.Reader, out io.Writer, mode detector.InteractionMode) *Prompter {
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  output.New(out),
		mode: mode,
	}
}

// Choose asks question until one of choices, or its first letter, is answered.
// In batch mode def is returned without asking.
func (p *Prompter) Choose(ctx context.Context, question string, choices []string, def string) (string, error) {
	if p.mode == detector.ModeBatch {
		return def, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		q := fmt.Sprintf("%s %s [%s]: ", style.Prompt, question, formatChoices(choices))
		if _, err := p.out.WriteString(p.out.String(q).Foreground(termenv.RGBColor(string(style.Amber))).String()); err != nil {
			return "", err
		}

		line, err := p.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if answer, ok := match(strings.TrimSpace(line), choices); ok {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			return "", domain.ErrPromptAborted
		}
		if err != nil {
			return "", err
		}
	}
}

// readLine reads one answer, returning early when ctx is cancelled.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.line, res.err
	}
}

// formatChoices renders "retry" as "(r)etry".
func formatChoices(choices []string) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		if c == "" {
			continue
		}
		parts = append(parts, "("+c[:1]+")"+c[1:])
	}
	return strings.Join(parts, ", ")
}

func match(answer string, choices []string) (string, bool) {
	answer = strings.ToLower(answer)
	if answer == "" {
		return "", false
	}
	if slices.Contains(choices, answer) {
		return answer, true
	}
	if len(answer) == 1 {
		for _, c := range choices {
			if strings.HasPrefix(c, answer) {
				return c, true
			}
		}
	}
	return "", false
}
