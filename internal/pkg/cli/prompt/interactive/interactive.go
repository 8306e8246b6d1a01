// Package interactive implements the Prompt interface on top of a terminal.
package interactive

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
)

type Prompt struct {
	stdin       surveyterm.FileReader
	stdout      surveyterm.FileWriter
	stderr      surveyterm.FileWriter
	interactive bool
}

func New(stdin surveyterm.FileReader, stdout surveyterm.FileWriter, stderr surveyterm.FileWriter) *Prompt {
	return &Prompt{
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		interactive: isatty.IsTerminal(stdin.Fd()) && isatty.IsTerminal(stdout.Fd()),
	}
}

func (p *Prompt) IsInteractive() bool {
	return p.interactive
}

func (p *Prompt) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.stdout, format, a...)
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	if c.Description != "" {
		p.Printf("\n%s\n", c.Description)
	}

	result := c.Default
	opts := p.getOpts(nil)
	err := survey.AskOne(&survey.Confirm{Message: c.Label, Default: c.Default}, &result, opts...)
	if err != nil {
		p.handleError(err)
		return false
	}
	return result
}

func (p *Prompt) Ask(q *prompt.Question) (result string, ok bool) {
	if q.Description != "" {
		p.Printf("\n%s\n", q.Description)
	}

	opts := p.getOpts(q.Validator)
	err := survey.AskOne(&survey.Input{Message: q.Label, Default: q.Default, Help: q.Help}, &result, opts...)
	if err != nil {
		p.handleError(err)
		return "", false
	}
	return result, true
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) (result []string, ok bool) {
	if s.Description != "" {
		p.Printf("\n%s\n", s.Description)
	}

	opts := p.getOpts(s.Validator)
	err := survey.AskOne(&survey.MultiSelect{Message: s.Label, Options: s.Options, Default: s.Default}, &result, opts...)
	if err != nil {
		p.handleError(err)
		return nil, false
	}
	return result, true
}

func (p *Prompt) getOpts(validator prompt.Validator) []survey.AskOpt {
	opts := []survey.AskOpt{
		survey.WithStdio(p.stdin, p.stdout, p.stderr),
		survey.WithShowCursor(true),
	}
	if validator != nil {
		opts = append(opts, survey.WithValidator(survey.Validator(validator)))
	}
	return opts
}

func (p *Prompt) handleError(err error) {
	if err == surveyterm.InterruptErr {
		p.Printf("Aborted.\n")
	} else {
		p.Printf("Error: %s\n", err)
	}
}
