package model

import (
	"github.com/keboola/go-utils/pkg/orderedmap"
)

// TermRecord is one term occurrence within a language group:
// field key -> extracted text, the "language" field is always present.
type TermRecord map[FieldKey]string

// NewTermRecord initializes a record with every selected term-level field blank.
func NewTermRecord(lang string, fields SelectedFields) TermRecord {
	record := make(TermRecord)
	for _, field := range fields {
		if field != FieldEntryID {
			record[field] = ""
		}
	}
	record[FieldLanguage] = lang
	return record
}

// Entry is one terminology concept: an id, entry-level field values
// and terms grouped by language, in the order of the first encounter.
type Entry struct {
	ID        string
	Fields    map[FieldKey]string
	languages *orderedmap.OrderedMap // language code -> []TermRecord
}

func NewEntry(id string) *Entry {
	return &Entry{
		ID:        id,
		Fields:    make(map[FieldKey]string),
		languages: orderedmap.New(),
	}
}

// SetLanguage stores terms of one language.
// A repeated language code keeps its original position, the terms are replaced.
func (e *Entry) SetLanguage(lang string, terms []TermRecord) {
	e.languages.Set(lang, terms)
}

// Languages returns language codes in the order of the first encounter.
func (e *Entry) Languages() []string {
	return e.languages.Keys()
}

func (e *Entry) Terms(lang string) []TermRecord {
	value, found := e.languages.Get(lang)
	if !found {
		return nil
	}
	return value.([]TermRecord)
}

// HasTerms returns false for entries that produced no term in any language,
// such entries still yield one output row with entry-level data only.
func (e *Entry) HasTerms() bool {
	return len(e.languages.Keys()) > 0
}
