package normalize

import (
	"regexp"
	"strings"
)

// removeDoctype drops the DOCTYPE. Entities it declares were expanded while
// parsing.
func removeDoctype(d *document) {
	d.prune(func(n *node) bool {
		return n.kind == kindDirective && strings.HasPrefix(strings.ToUpper(n.text), "DOCTYPE")
	})
}

func removeXMLProcInst(d *document) {
	d.prune(func(n *node) bool {
		return n.kind == kindProcInst && n.name == "xml"
	})
}

var editorNamespaces = map[string]bool{
	"http://creativecommons.org/ns#":                         true,
	"http://inkscape.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://ns.adobe.com/AdobeIllustrator/10.0/":             true,
	"http://ns.adobe.com/AdobeSVGViewerExtensions/3.0/":      true,
	"http://ns.adobe.com/Extensibility/1.0/":                 true,
	"http://ns.adobe.com/Flows/1.0/":                         true,
	"http://ns.adobe.com/GenericCustomNamespace/1.0/":        true,
	"http://ns.adobe.com/Graphs/1.0/":                        true,
	"http://ns.adobe.com/ImageReplacement/1.0/":              true,
	"http://ns.adobe.com/SaveForWeb/1.0/":                    true,
	"http://ns.adobe.com/Variables/1.0/":                     true,
	"http://ns.adobe.com/XPath/1.0/":                         true,
	"http://purl.org/dc/elements/1.1/":                       true,
	"http://schemas.microsoft.com/visio/2003/SVGExtensions/": true,
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd":     true,
	"http://taptrix.com/vectorillustrator/svg_extensions":    true,
	"http://www.bohemiancoding.com/sketch/ns":                true,
	"http://www.figma.com/figma/ns":                          true,
	"http://www.inkscape.org/namespaces/inkscape":            true,
	"http://www.serif.com/":                                  true,
	"http://www.vector.evaxdesign.sk":                        true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":            true,
	"https://boxy-svg.com":                                   true,
}

// removeEditorsNSData drops namespace declarations pointing at editor
// namespaces together with every element and attribute using their prefix.
func removeEditorsNSData(d *document) {
	prefixes := map[string]bool{}

	d.elements(func(n *node) {
		n.filterAttrs(func(a attr) bool {
			prefix, ok := strings.CutPrefix(a.Name, "xmlns:")
			if ok && editorNamespaces[a.Value] {
				prefixes[prefix] = true
				return false
			}

			return true
		})
	})

	if len(prefixes) == 0 {
		return
	}

	hasEditorPrefix := func(name string) bool {
		prefix, _, ok := strings.Cut(name, ":")
		return ok && prefixes[prefix]
	}

	d.dropElements(func(n *node) bool { return hasEditorPrefix(n.name) })
	d.elements(func(n *node) {
		n.filterAttrs(func(a attr) bool { return !hasEditorPrefix(a.Name) })
	})
}

var reStandardDesc = regexp.MustCompile(`^(Created with|Created using)`)

// removeDesc drops editor-generated or empty descriptions; meaningful ones
// are kept for accessibility.
func removeDesc(d *document) {
	d.dropElements(func(n *node) bool {
		if n.name != "desc" {
			return false
		}

		text := strings.TrimSpace(n.textContent())

		return len(n.children) == 0 || text == "" || reStandardDesc.MatchString(text)
	})
}

var containerElems = map[string]bool{
	"a":             true,
	"clipPath":      true,
	"defs":          true,
	"g":             true,
	"marker":        true,
	"mask":          true,
	"missing-glyph": true,
	"pattern":       true,
	"switch":        true,
	"symbol":        true,
}

func removeEmptyContainers(d *document) {
	d.pruneAfter(func(n *node) bool {
		if !n.isElement() || !containerElems[n.name] || len(n.children) > 0 {
			return false
		}

		switch n.name {
		case "pattern":
			return len(n.attrs) == 0
		case "g":
			_, ok := n.getAttr("filter")
			return !ok
		case "mask":
			_, ok := n.getAttr("id")
			return !ok
		}

		return true
	})
}

func removeXMLNS(d *document) {
	d.elements(func(n *node) {
		if n.name == "svg" {
			n.removeAttr("xmlns")
		}
	})
}

// removeUnusedNS drops xmlns:prefix declarations no element or attribute uses.
func removeUnusedNS(d *document) {
	used := map[string]bool{}

	markUsed := func(name string) {
		if prefix, _, ok := strings.Cut(name, ":"); ok && prefix != "xmlns" {
			used[prefix] = true
		}
	}

	d.elements(func(n *node) {
		markUsed(n.name)

		for _, a := range n.attrs {
			markUsed(a.Name)
		}
	})

	d.elements(func(n *node) {
		n.filterAttrs(func(a attr) bool {
			prefix, ok := strings.CutPrefix(a.Name, "xmlns:")
			return !ok || used[prefix]
		})
	})
}
