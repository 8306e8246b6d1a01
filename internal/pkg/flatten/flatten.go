// Package flatten converts extracted terminology entries into a flat table:
// one row per entry, with dynamically named, collision-free columns.
package flatten

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// Flatten merges the entries, in document order, into the output table.
// An entry without any term still yields one row with entry-level data only.
func Flatten(logger *zap.SugaredLogger, entries []*model.Entry, selected model.SelectedFields) *model.Table {
	logger.Debug(`Flattening entries into rows.`)

	table := &model.Table{}
	seen := make(map[string]bool)
	addColumn := func(name string) {
		if !seen[name] {
			seen[name] = true
			table.Columns = append(table.Columns, name)
		}
	}

	for _, entry := range entries {
		row := model.NewRow()

		if selected.Contains(model.FieldEntryID) {
			row.Set(string(model.FieldEntryID), entry.ID)
		}

		// Entry-level fields are blank when absent on this entry
		for _, field := range selected {
			if field.EntryLevel() && field != model.FieldEntryID {
				row.Set(string(field), entry.Fields[field])
			}
		}

		for _, lang := range entry.Languages() {
			for i, record := range entry.Terms(lang) {
				for _, field := range selected {
					if field.EntryLevel() {
						continue
					}
					row.Set(ColumnName(lang, field, i), record[field])
				}
			}
		}

		for _, column := range row.Keys() {
			addColumn(column)
		}
		table.Rows = append(table.Rows, row)
		logger.Debugf(`Entry "%s": created row with %d columns.`, entry.ID, len(row.Keys()))
	}

	logger.Debugf(`Created %d rows.`, len(table.Rows))
	return table
}

// ColumnName computes the column for the i-th term (0-based) of a language.
// The first term gets "{lang}_{field}", later ones "{lang}_{field}_{i+1}",
// so (language, field, index) triples stay unique within one entry.
func ColumnName(lang string, field model.FieldKey, i int) string {
	if i == 0 {
		return fmt.Sprintf(`%s_%s`, lang, field)
	}
	return fmt.Sprintf(`%s_%s_%d`, lang, field, i+1)
}
