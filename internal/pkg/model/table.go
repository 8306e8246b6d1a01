package model

import (
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Row is one flattened output row: column name -> text value.
// Keys are ordered as they were created during flattening.
type Row = orderedmap.OrderedMap

func NewRow() *Row {
	return orderedmap.New()
}

// Table is the flattened output: one row per entry, in document order,
// plus the union of all column names in the first-seen order.
// A column missing from a row renders as a blank cell, never as a missing one.
type Table struct {
	Columns []string
	Rows    []*Row
}

// Cell returns the row value for the column, or "" when the row lacks it.
func (t *Table) Cell(row *Row, column string) string {
	value, found := row.Get(column)
	if !found {
		return ""
	}
	return value.(string)
}

// Empty reports the "no data" condition, zero rows were produced.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Languages detects language codes from the column names:
// the first segment of every column containing "_" that is not entry-level,
// in the first-seen order.
func (t *Table) Languages() []string {
	var languages []string
	seen := make(map[string]bool)
	for _, column := range t.Columns {
		if !strings.Contains(column, "_") || strings.HasPrefix(column, "entry_") {
			continue
		}
		lang := strings.SplitN(column, "_", 2)[0]
		if !seen[lang] {
			seen[lang] = true
			languages = append(languages, lang)
		}
	}
	return languages
}
