package flatten

import (
	"strings"
	"unicode"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// RenameColumns applies the field mapping to the table columns and row keys,
// preserving row-to-column association. Identity mapping is a no-op.
func RenameColumns(table *model.Table, mapping model.FieldMapping) *model.Table {
	out := &model.Table{Columns: make([]string, 0, len(table.Columns))}

	for _, column := range table.Columns {
		out.Columns = append(out.Columns, RenameColumn(column, mapping))
	}

	for _, row := range table.Rows {
		renamed := model.NewRow()
		for _, key := range row.Keys() {
			value, _ := row.Get(key)
			renamed.Set(RenameColumn(key, mapping), value)
		}
		out.Rows = append(out.Rows, renamed)
	}

	return out
}

// RenameColumn rewrites one column name according to the mapping.
//
// A column containing "_" is parsed as "{language}_{field}" with an optional
// numeric index suffix "_{N}", and only the field portion is substituted.
// Otherwise, or when the field has no mapping, the whole column name is
// looked up directly, which covers entry-level columns.
//
// Known limitation: a field key that itself contains underscores and ends in
// digits is misparsed as carrying an index suffix. The behavior is observable
// and relied upon, so it is kept as is.
func RenameColumn(column string, mapping model.FieldMapping) string {
	if strings.Contains(column, "_") {
		parts := strings.Split(column, "_")
		lang := parts[0]

		suffix := ""
		field := strings.Join(parts[1:], "_")
		if len(parts) >= 3 && isNumeric(parts[len(parts)-1]) {
			suffix = "_" + parts[len(parts)-1]
			field = strings.Join(parts[1:len(parts)-1], "_")
		}

		if mapped, found := mapping[field]; found {
			return lang + "_" + mapped + suffix
		}
	}

	if mapped, found := mapping[column]; found {
		return mapped
	}

	return column
}

func isNumeric(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
