// Package dialog contains the interactive dialogs of the convert command.
package dialog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt"
	"github.com/termtools/tbx2sheet/internal/pkg/cli/prompt/interactive"
	nopPrompt "github.com/termtools/tbx2sheet/internal/pkg/cli/prompt/nop"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/testhelper/terminal"
)

type Dialogs struct {
	prompt.Prompt
}

func New(prompt prompt.Prompt) *Dialogs {
	return &Dialogs{Prompt: prompt}
}

func NewForTest(t *testing.T, useTerminal bool) (*Dialogs, terminal.Console) {
	t.Helper()

	if useTerminal {
		// Create virtual console
		console, err := terminal.New(t)
		require.NoError(t, err)

		// Create prompt
		p := interactive.New(console.Tty(), console.Tty(), console.Tty())

		// Create dialogs
		return New(p), console
	}

	return New(nopPrompt.New()), nil
}
