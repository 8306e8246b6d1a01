package model

import (
	"sort"
	"strings"
)

// FieldKey identifies one semantic column category extractable from a TBX document.
// It is either a fixed name (term, language, entry_id) or a name synthesized
// from an element tag and its "type" attribute, eg. "termNote_status".
type FieldKey string

const (
	FieldEntryID  FieldKey = "entry_id"
	FieldLanguage FieldKey = "language"
	FieldTerm     FieldKey = "term"
)

// EntryLevel returns true for fields that belong to the whole entry,
// not to a term within a language group.
func (f FieldKey) EntryLevel() bool {
	return f == FieldEntryID || strings.HasPrefix(string(f), "entry_")
}

// SelectedFields is an ordered, non-empty set of fields chosen by the user.
// The order affects only listings, the output column order follows the document.
type SelectedFields []FieldKey

func (s SelectedFields) Contains(field FieldKey) bool {
	for _, f := range s {
		if f == field {
			return true
		}
	}
	return false
}

func (s SelectedFields) Sorted() SelectedFields {
	out := make(SelectedFields, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FieldMapping maps an original field key, or exceptionally a full column name,
// to the display name chosen by the user. Identity mapping is the default.
type FieldMapping map[string]string

// IdentityMapping maps every selected field to itself.
func IdentityMapping(fields SelectedFields) FieldMapping {
	out := make(FieldMapping, len(fields))
	for _, f := range fields {
		out[string(f)] = string(f)
	}
	return out
}
