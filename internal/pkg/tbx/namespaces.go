package tbx

import (
	"strings"

	"github.com/beevik/etree"
)

// Conventional TBX namespaces, overridden by declarations on the root element.
const (
	TBXNamespace   = "http://www.lisa.org/TBX-Specification.33.0.html"
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

// Namespaces maps a namespace prefix to its URI in the "{uri}" query form.
// The default (unprefixed) namespace is stored under the "default" key.
type Namespaces map[string]string

// ResolveNamespaces seeds the conventional TBX namespaces and overrides them
// with "xmlns" declarations found on the root element.
// It never fails, a document without declarations yields the seeded table.
func ResolveNamespaces(root *etree.Element) Namespaces {
	ns := Namespaces{
		"default": "{" + TBXNamespace + "}",
		"xml":     "{" + XMLNamespace + "}",
		"xlink":   "{" + XLinkNamespace + "}",
	}

	if root == nil {
		return ns
	}

	for _, attr := range root.Attr {
		switch {
		case attr.Space == "xmlns":
			// xmlns:prefix="uri"
			ns[attr.Key] = "{" + attr.Value + "}"
		case attr.Space == "" && attr.Key == "xmlns":
			// xmlns="uri"
			ns["default"] = "{" + attr.Value + "}"
		}
	}

	return ns
}

// Declares returns true when the prefix is present in the table.
// Unprefixed elements are matched separately, see Document.
func (n Namespaces) Declares(prefix string) bool {
	_, found := n[prefix]
	return found
}

// URI returns the bare namespace URI for the prefix, or "".
func (n Namespaces) URI(prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(n[prefix], "{"), "}")
}
