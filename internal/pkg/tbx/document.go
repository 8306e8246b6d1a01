package tbx

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/termtools/tbx2sheet/internal/pkg/filesystem"
	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

// Document is a parsed TBX file with the resolved namespace table.
// It is read-only after creation, one instance per conversion run.
type Document struct {
	Path       string
	Namespaces Namespaces
	root       *etree.Element
}

// LoadDocument reads and parses the TBX file.
// A missing file or malformed XML is a fatal input error.
func LoadDocument(fs filesystem.Fs, path string) (*Document, error) {
	file, err := fs.ReadFile(path, "TBX file")
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(file.Content); err != nil {
		return nil, errors.Errorf(`cannot parse TBX file "%s": %w`, path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, errors.Errorf(`cannot parse TBX file "%s": document has no root element`, path)
	}

	return &Document{Path: path, Namespaces: ResolveNamespaces(root), root: root}, nil
}

func (d *Document) Root() *etree.Element {
	return d.root
}

// Entries returns the entry elements in document order.
// Exact "termEntry" matches are preferred, then the namespace-qualified form,
// then any element whose tag contains "termentry" case-insensitively.
func (d *Document) Entries() []*etree.Element {
	var entries []*etree.Element
	walkElements(d.root, func(el *etree.Element) {
		if el.Space == "" && el.Tag == "termEntry" {
			entries = append(entries, el)
		}
	})

	if len(entries) == 0 {
		walkElements(d.root, func(el *etree.Element) {
			if el.Tag == "termEntry" && d.Namespaces.Declares(el.Space) {
				entries = append(entries, el)
			}
		})
	}

	if len(entries) == 0 {
		walkElements(d.root, func(el *etree.Element) {
			if strings.Contains(strings.ToLower(fullTag(el)), "termentry") {
				entries = append(entries, el)
			}
		})
	}

	return entries
}

// walkElements visits the element and all its descendants in document order.
func walkElements(el *etree.Element, fn func(el *etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walkElements(child, fn)
	}
}

// findDescendants returns descendants of the element, in document order,
// whose local tag equals one of the names, regardless of the namespace prefix.
func findDescendants(el *etree.Element, names ...string) []*etree.Element {
	var out []*etree.Element
	walkElements(el, func(child *etree.Element) {
		if child == el {
			return
		}
		for _, name := range names {
			if child.Tag == name {
				out = append(out, child)
				return
			}
		}
	})
	return out
}

// dedupeElements removes duplicates by element identity, preserving order.
func dedupeElements(elements []*etree.Element) []*etree.Element {
	seen := make(map[*etree.Element]bool, len(elements))
	var out []*etree.Element
	for _, el := range elements {
		if !seen[el] {
			seen[el] = true
			out = append(out, el)
		}
	}
	return out
}

// fullTag returns the tag including the namespace prefix, if any.
func fullTag(el *etree.Element) string {
	if el.Space == "" {
		return el.Tag
	}
	return el.Space + ":" + el.Tag
}

// elementText returns the trimmed text content directly under the element.
func elementText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}
