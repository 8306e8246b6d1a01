// Package prompt defines interactive dialogs with the user.
// Implementations: the "interactive" sub-package backed by a terminal
// and the "nop" sub-package used in the non-interactive mode.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2/core"

	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

type Validator func(val any) error

type Prompt interface {
	IsInteractive() bool
	Printf(format string, a ...any)
	Confirm(c *Confirm) bool
	Ask(q *Question) (result string, ok bool)
	MultiSelect(s *MultiSelect) (result []string, ok bool)
}

type Confirm struct {
	Label       string
	Description string
	Default     bool
}

type Question struct {
	Label       string
	Description string
	Help        string
	Default     string
	Validator   Validator
}

type MultiSelect struct {
	Label       string
	Description string
	Options     []string
	Default     []string
	Validator   Validator
}

func ValueRequired(val any) error {
	str := strings.TrimSpace(val.(string))
	if len(str) == 0 {
		return errors.New("value is required")
	}
	return nil
}

func AtLeastOneRequired(val any) error {
	selected := val.([]core.OptionAnswer)
	if len(selected) == 0 {
		return errors.New("at least one value is required")
	}
	return nil
}
