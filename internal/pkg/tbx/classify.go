package tbx

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/termtools/tbx2sheet/internal/pkg/model"
)

// Tags recognized as fields on their own, without a "type" attribute.
// A plain "note" tag belongs here conceptually, but the termNote branch
// in ClassifyTag catches it first and yields "termNote_note".
var plainFieldTags = map[string]bool{ // nolint: gochecknoglobals
	"definition": true,
	"context":    true,
	"example":    true,
}

// ClassifyTag derives the field key for one element within a term group.
// The tag is matched case-insensitively against the recognized variants.
// known=false marks the generic fallback, the bare lowercased tag,
// which is kept only when the caller explicitly selected it.
func ClassifyTag(el *etree.Element) (field model.FieldKey, known bool) {
	tag := strings.ToLower(el.Tag)
	switch {
	case tag == "term":
		return model.FieldTerm, true
	case strings.Contains(tag, "note"):
		return model.FieldKey("termNote_" + typeAttr(el, "note")), true
	case strings.Contains(tag, "descrip"):
		return model.FieldKey("descrip_" + typeAttr(el, "description")), true
	case plainFieldTags[tag]:
		return model.FieldKey(tag), true
	default:
		return model.FieldKey(tag), false
	}
}

// typeAttr returns the "type" attribute, or the category default.
func typeAttr(el *etree.Element, defaultType string) string {
	if value := el.SelectAttrValue("type", ""); value != "" {
		return value
	}
	return defaultType
}
