package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	nopPrompt "github.com/termtools/tbx2sheet/internal/pkg/cli/prompt/nop"
	"github.com/termtools/tbx2sheet/internal/pkg/env"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/filesystem/aferofs"
	"github.com/termtools/tbx2sheet/internal/pkg/utils"
)

const testDocument = `<?xml version="1.0" encoding="UTF-8"?>
<martif type="TBX" xml:lang="en">
  <text>
    <body>
      <termEntry id="c1">
        <descrip type="subjectField">botany</descrip>
        <langSet xml:lang="en">
          <tig>
            <term>dandelion</term>
            <termNote type="administrativeStatus">preferred</termNote>
          </tig>
        </langSet>
        <langSet xml:lang="de">
          <tig>
            <term>Löwenzahn</term>
          </tig>
        </langSet>
      </termEntry>
      <termEntry id="c2">
        <langSet xml:lang="en">
          <tig>
            <term>daisy</term>
          </tig>
        </langSet>
      </termEntry>
    </body>
  </text>
</martif>
`

func newTestRootCommandWithFs(t *testing.T) (*rootCommand, filesystem.Fs, *bytes.Buffer) {
	t.Helper()
	fs, err := aferofs.NewMemoryFs(zap.NewNop().Sugar(), "")
	require.NoError(t, err)
	fsFactory := func(logger *zap.SugaredLogger, workingDir string) (filesystem.Fs, error) {
		return fs, nil
	}

	in := utils.NewBufferReader()
	out := &bytes.Buffer{}
	return NewRootCommand(in, out, out, nopPrompt.New(), env.Empty(), fsFactory), fs, out
}

func TestConvertCommandCsv(t *testing.T) {
	t.Parallel()
	root, fs, out := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))

	root.cmd.SetArgs([]string{"convert", "sample.tbx", "--auto", "--format", "csv"})
	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Converted "sample.tbx" to "sample.csv".`)

	file, err := fs.ReadFile("sample.csv", "output")
	require.NoError(t, err)
	expected := "entry_id,entry_descrip_subjectField,en_language,en_term,en_termNote_administrativeStatus,de_language,de_term,de_termNote_administrativeStatus\n" +
		"c1,botany,en,dandelion,preferred,de,Löwenzahn,\n" +
		"c2,,en,daisy,,,,\n"
	assert.Equal(t, expected, file.Content)
}

func TestConvertCommandAutoMatchesDefaults(t *testing.T) {
	t.Parallel()

	// The "--auto" flag
	autoRoot, autoFs, _ := newTestRootCommandWithFs(t)
	require.NoError(t, autoFs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))
	autoRoot.cmd.SetArgs([]string{"convert", "sample.tbx", "--auto", "--format", "csv"})
	assert.Equal(t, 0, autoRoot.Execute())

	// No flags, non-interactive: all fields are exported under the original names
	plainRoot, plainFs, _ := newTestRootCommandWithFs(t)
	require.NoError(t, plainFs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))
	plainRoot.cmd.SetArgs([]string{"convert", "sample.tbx", "--format", "csv"})
	assert.Equal(t, 0, plainRoot.Execute())

	// Both runs produce the same output
	autoFile, err := autoFs.ReadFile("sample.csv", "output")
	require.NoError(t, err)
	plainFile, err := plainFs.ReadFile("sample.csv", "output")
	require.NoError(t, err)
	assert.Equal(t, autoFile.Content, plainFile.Content)
}

func TestConvertCommandNoEntries(t *testing.T) {
	t.Parallel()
	root, fs, out := newTestRootCommandWithFs(t)
	document := `<?xml version="1.0" encoding="UTF-8"?><martif type="TBX"><text><body/></text></martif>`
	require.NoError(t, fs.WriteFile(filesystem.NewFile("empty.tbx", document)))

	root.cmd.SetArgs([]string{"convert", "empty.tbx", "--auto"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `no entries found in "empty.tbx"`)
	assert.False(t, fs.IsFile("empty.xlsx"))
}

func TestConvertCommandXlsx(t *testing.T) {
	t.Parallel()
	root, fs, out := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))

	root.cmd.SetArgs([]string{"convert", "sample.tbx", "--auto", "--output", "terms.xlsx", "--summary"})
	assert.Equal(t, 0, root.Execute())
	assert.True(t, fs.IsFile("terms.xlsx"))

	// Summary
	assert.Contains(t, out.String(), `Converted "sample.tbx" to "terms.xlsx".`)
	assert.Contains(t, out.String(), "2 entries converted")
	assert.Contains(t, out.String(), "2 languages: en, de")
	assert.Contains(t, out.String(), "8 columns")
}

func TestConvertCommandSelectedFields(t *testing.T) {
	t.Parallel()
	root, fs, _ := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))

	root.cmd.SetArgs([]string{"convert", "sample.tbx", "--fields", "entry_id,term", "--format", "csv"})
	assert.Equal(t, 0, root.Execute())

	file, err := fs.ReadFile("sample.csv", "output")
	require.NoError(t, err)
	expected := "entry_id,en_term,de_term\n" +
		"c1,dandelion,Löwenzahn\n" +
		"c2,daisy,\n"
	assert.Equal(t, expected, file.Content)
}

func TestConvertCommandMappingFile(t *testing.T) {
	t.Parallel()
	root, fs, _ := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))
	require.NoError(t, fs.WriteFile(filesystem.NewFile("mapping.json", `{"term": "translation"}`)))

	root.cmd.SetArgs([]string{"convert", "sample.tbx", "--fields", "entry_id,term", "--mapping-file", "mapping.json", "--format", "csv"})
	assert.Equal(t, 0, root.Execute())

	file, err := fs.ReadFile("sample.csv", "output")
	require.NoError(t, err)
	expected := "entry_id,en_translation,de_translation\n" +
		"c1,dandelion,Löwenzahn\n" +
		"c2,daisy,\n"
	assert.Equal(t, expected, file.Content)
}

func TestConvertCommandMissingFile(t *testing.T) {
	t.Parallel()
	root, _, out := newTestRootCommandWithFs(t)

	root.cmd.SetArgs([]string{"convert", "missing.tbx", "--auto"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `TBX file "missing.tbx" not found`)
}

func TestConvertCommandInvalidFormat(t *testing.T) {
	t.Parallel()
	root, fs, out := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))

	root.cmd.SetArgs([]string{"convert", "sample.tbx", "--auto", "--format", "pdf"})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), "format")
}

func TestFieldsCommand(t *testing.T) {
	t.Parallel()
	root, fs, out := newTestRootCommandWithFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("sample.tbx", testDocument)))

	root.cmd.SetArgs([]string{"fields", "sample.tbx"})
	assert.Equal(t, 0, root.Execute())
	assert.Contains(t, out.String(), `Found 5 fields in "sample.tbx":`)
	assert.Contains(t, out.String(), "entry_descrip_subjectField")
	assert.Contains(t, out.String(), "termNote_administrativeStatus")
}
