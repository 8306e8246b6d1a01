// Package nop implements the Prompt interface for the non-interactive mode,
// each dialog resolves to its default value.
package nop

import (
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
)

type Prompt struct{}

func New() prompt.Prompt {
	return &Prompt{}
}

func (p *Prompt) IsInteractive() bool {
	return false
}

func (p *Prompt) Printf(_ string, _ ...any) {
	// nop
}

func (p *Prompt) Confirm(c *prompt.Confirm) bool {
	return c.Default
}

func (p *Prompt) Ask(q *prompt.Question) (result string, ok bool) {
	return q.Default, true
}

func (p *Prompt) MultiSelect(s *prompt.MultiSelect) (result []string, ok bool) {
	return s.Default, true
}
