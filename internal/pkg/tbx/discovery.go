package tbx

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// Only a bounded prefix of entries is sampled,
// so discovery stays fast on large documents.
// The result may be incomplete for large heterogeneous files.
const discoverySampleSize = 3

// DiscoverFields scans the TBX file and returns the alphabetically sorted
// set of field keys found in the sampled entries.
// Discovery is advisory: any failure falls back to a fixed default field set.
func DiscoverFields(logger *zap.SugaredLogger, fs filesystem.Fs, path string) model.SelectedFields {
	logger.Debugf(`Scanning "%s" to identify available data fields.`, path)

	doc, err := LoadDocument(fs, path)
	if err != nil {
		logger.Warnf(`Cannot scan fields: %s`, err)
		logger.Warn(`Using the default field set.`)
		return defaultFields()
	}

	return discoverFields(logger, doc)
}

func discoverFields(logger *zap.SugaredLogger, doc *Document) model.SelectedFields {
	found := make(map[model.FieldKey]bool)

	entries := doc.Entries()
	sampled := entries
	if len(entries) > discoverySampleSize {
		sampled = entries[:discoverySampleSize]
		logger.Warnf(
			`Sampled the first %d of %d entries, the field list may be incomplete for heterogeneous files.`,
			discoverySampleSize, len(entries),
		)
	}

	for _, entry := range sampled {
		for _, langGrp := range findDescendants(entry, "langSet", "langGrp") {
			for _, termGrp := range findDescendants(langGrp, "tig", "termGrp") {
				walkElements(termGrp, func(el *etree.Element) {
					if field, known := ClassifyTag(el); known {
						found[field] = true
					}
				})
			}
		}

		// Entry-level description and subject fields
		walkElements(entry, func(el *etree.Element) {
			tag := strings.ToLower(el.Tag)
			switch {
			case strings.Contains(tag, "descrip"):
				found[model.FieldKey("entry_descrip_"+typeAttr(el, "description"))] = true
			case strings.Contains(tag, "subject"):
				found[model.FieldKey("entry_subject")] = true
			}
		})
	}

	// Baseline guarantee, present regardless of what was observed
	found[model.FieldEntryID] = true
	found[model.FieldLanguage] = true
	found[model.FieldTerm] = true

	fields := make(model.SelectedFields, 0, len(found))
	for field := range found {
		fields = append(fields, field)
	}
	return fields.Sorted()
}

// defaultFields is the fallback when sampling fails.
func defaultFields() model.SelectedFields {
	fields := model.SelectedFields{
		model.FieldEntryID,
		model.FieldLanguage,
		model.FieldTerm,
		"termNote_status",
		"termNote_forbidden",
		"termNote_preferred",
	}
	return fields.Sorted()
}
