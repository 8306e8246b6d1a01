package tbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
	"github.com/termtools/tbx2sheet/internal/pkg/utils"
)

func TestDiscoverFields(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("doc.tbx", `
		<martif>
			<text><body>
				<termEntry id="c1">
					<descrip type="subjectField">botany</descrip>
					<langSet xml:lang="en">
						<tig>
							<term>dandelion</term>
							<termNote type="administrativeStatus">preferred</termNote>
						</tig>
					</langSet>
				</termEntry>
				<termEntry id="c2">
					<langSet xml:lang="en">
						<tig>
							<term>daisy</term>
							<descrip type="definition">a small flower</descrip>
						</tig>
					</langSet>
				</termEntry>
			</body></text>
		</martif>
	`)))

	fields := DiscoverFields(zap.NewNop().Sugar(), fs, "doc.tbx")
	assert.Equal(t, model.SelectedFields{
		"descrip_definition",
		"entry_descrip_definition",
		"entry_descrip_subjectField",
		"entry_id",
		"language",
		"term",
		"termNote_administrativeStatus",
	}, fields)
}

func TestDiscoverFieldsSamplesPrefixOnly(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("doc.tbx", `
		<martif>
			<text><body>
				<termEntry id="c1"><langSet xml:lang="en"><tig><term>one</term></tig></langSet></termEntry>
				<termEntry id="c2"><langSet xml:lang="en"><tig><term>two</term></tig></langSet></termEntry>
				<termEntry id="c3"><langSet xml:lang="en"><tig><term>three</term></tig></langSet></termEntry>
				<termEntry id="c4">
					<langSet xml:lang="en">
						<tig>
							<term>four</term>
							<termNote type="onlyInFourth">rare</termNote>
						</tig>
					</langSet>
				</termEntry>
			</body></text>
		</martif>
	`)))

	logger, writer, out := utils.NewDebugLogger()
	fields := DiscoverFields(logger, fs, "doc.tbx")
	require.NoError(t, writer.Flush())

	// The 4th entry is beyond the sample, its field is not discovered
	assert.Equal(t, model.SelectedFields{"entry_id", "language", "term"}, fields)
	assert.Contains(t, out.String(), "Sampled the first 3 of 4 entries")
}

func TestDiscoverFieldsFallbackOnError(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)

	logger, writer, out := utils.NewDebugLogger()
	fields := DiscoverFields(logger, fs, "missing.tbx")
	require.NoError(t, writer.Flush())

	assert.Equal(t, model.SelectedFields{
		"entry_id",
		"language",
		"term",
		"termNote_forbidden",
		"termNote_preferred",
		"termNote_status",
	}, fields)
	assert.Contains(t, out.String(), "Using the default field set.")
}
