package tbx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// ExtractEntries converts every entry element into an Entry,
// with term records grouped by language. Entries are returned in document
// order, one Entry per entry element, even when no term was extracted.
func ExtractEntries(logger *zap.SugaredLogger, doc *Document, selected model.SelectedFields) []*model.Entry {
	elements := doc.Entries()
	logger.Infof(`Found %d term entries.`, len(elements))

	entries := make([]*model.Entry, 0, len(elements))
	for i, element := range elements {
		// Fallback id is 1-based over document order
		id := element.SelectAttrValue("id", fmt.Sprintf("entry_%d", i+1))
		logger.Debugf(`Processing entry %d: %s`, i+1, id)

		entry := model.NewEntry(id)
		extractEntryFields(element, selected, entry)

		for _, langGrp := range languageGroups(element) {
			lang, terms := extractLanguageGroup(logger, doc, langGrp, selected)
			if lang != "" && len(terms) > 0 {
				entry.SetLanguage(lang, terms)
			}
		}

		if !entry.HasTerms() {
			logger.Warnf(`No terms found for entry "%s".`, id)
		}

		entries = append(entries, entry)
	}

	return entries
}

// extractEntryFields collects entry-level description and subject values.
// Values are stored only when the field is selected and the text is non-empty.
func extractEntryFields(element *etree.Element, selected model.SelectedFields, entry *model.Entry) {
	walkElements(element, func(el *etree.Element) {
		text := elementText(el)
		if text == "" {
			return
		}

		tag := strings.ToLower(el.Tag)
		switch {
		case strings.Contains(tag, "descrip"):
			field := model.FieldKey("entry_descrip_" + typeAttr(el, "description"))
			if selected.Contains(field) {
				entry.Fields[field] = text
			}
		case strings.Contains(tag, "subject"):
			if selected.Contains("entry_subject") {
				entry.Fields["entry_subject"] = text
			}
		}
	})
}

// languageGroups locates the language groups of one entry:
// "langSet" elements first, then "langGrp", then any element whose tag
// contains "lang" together with "grp" or "set".
func languageGroups(entry *etree.Element) []*etree.Element {
	groups := findDescendants(entry, "langSet")
	if len(groups) == 0 {
		groups = findDescendants(entry, "langGrp")
	}
	if len(groups) == 0 {
		walkElements(entry, func(el *etree.Element) {
			tag := strings.ToLower(fullTag(el))
			if el != entry && strings.Contains(tag, "lang") && (strings.Contains(tag, "grp") || strings.Contains(tag, "set")) {
				groups = append(groups, el)
			}
		})
	}
	return dedupeElements(groups)
}

// extractLanguageGroup returns the language code and the ordered term records
// of one language group. Duplicate term texts within the group are discarded,
// the first occurrence wins.
func extractLanguageGroup(logger *zap.SugaredLogger, doc *Document, langGrp *etree.Element, selected model.SelectedFields) (string, []model.TermRecord) {
	lang := languageCode(langGrp)
	logger.Debugf(`Processing language group: %s`, lang)

	termGroups := dedupeElements(append(
		findDescendants(langGrp, "tig"),
		findDescendants(langGrp, "termGrp")...,
	))
	logger.Debugf(`Found %d term groups.`, len(termGroups))

	var terms []model.TermRecord
	seen := make(map[string]bool)

	for _, termGrp := range termGroups {
		termElement := findTermElement(doc, termGrp)
		if termElement == nil {
			logger.Debugf(`No term element found in a term group of language "%s".`, lang)
			continue
		}

		// Skip empty terms and duplicates, dedup by text, not by element
		text := elementText(termElement)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		logger.Debugf(`Found term: "%s"`, text)

		record := model.NewTermRecord(lang, selected)
		if selected.Contains(model.FieldTerm) {
			record[model.FieldTerm] = text
		}

		// Collect the annotations of the term
		walkElements(termGrp, func(el *etree.Element) {
			value := elementText(el)
			if value == "" {
				return
			}
			if field, _ := ClassifyTag(el); selected.Contains(field) {
				record[field] = value
			}
		})

		terms = append(terms, record)
	}

	return lang, terms
}

// languageCode resolves the language of one language group:
// the "xml:lang" attribute first, then a plain "lang" attribute.
// The etree lookup of "xml:lang" covers the namespace-qualified form too.
func languageCode(langGrp *etree.Element) string {
	if lang := langGrp.SelectAttrValue("xml:lang", ""); lang != "" {
		return lang
	}
	return langGrp.SelectAttrValue("lang", "")
}

// findTermElement locates the term text element of one term group.
// Tried in order: un-namespaced "term", the namespace-qualified form,
// then any element whose tag contains "term" case-insensitively,
// which may be the term group itself.
func findTermElement(doc *Document, termGrp *etree.Element) *etree.Element {
	var found *etree.Element

	walkElements(termGrp, func(el *etree.Element) {
		if found == nil && el != termGrp && el.Space == "" && el.Tag == "term" {
			found = el
		}
	})
	if found != nil {
		return found
	}

	walkElements(termGrp, func(el *etree.Element) {
		if found == nil && el != termGrp && el.Tag == "term" && doc.Namespaces.Declares(el.Space) {
			found = el
		}
	})
	if found != nil {
		return found
	}

	walkElements(termGrp, func(el *etree.Element) {
		if found == nil && strings.Contains(strings.ToLower(fullTag(el)), "term") {
			found = el
		}
	})
	return found
}
