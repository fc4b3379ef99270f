package normalize

import "strings"

// presentationAttrs lists the CSS properties that have an equivalent
// presentation attribute.
var presentationAttrs = map[string]bool{
	"alignment-baseline":          true,
	"baseline-shift":              true,
	"clip-path":                   true,
	"clip-rule":                   true,
	"color":                       true,
	"color-interpolation":         true,
	"color-interpolation-filters": true,
	"color-rendering":             true,
	"cursor":                      true,
	"direction":                   true,
	"display":                     true,
	"dominant-baseline":           true,
	"fill":                        true,
	"fill-opacity":                true,
	"fill-rule":                   true,
	"filter":                      true,
	"flood-color":                 true,
	"flood-opacity":               true,
	"font-family":                 true,
	"font-size":                   true,
	"font-size-adjust":            true,
	"font-stretch":                true,
	"font-style":                  true,
	"font-variant":                true,
	"font-weight":                 true,
	"image-rendering":             true,
	"letter-spacing":              true,
	"lighting-color":              true,
	"marker-end":                  true,
	"marker-mid":                  true,
	"marker-start":                true,
	"mask":                        true,
	"opacity":                     true,
	"overflow":                    true,
	"paint-order":                 true,
	"pointer-events":              true,
	"shape-rendering":             true,
	"stop-color":                  true,
	"stop-opacity":                true,
	"stroke":                      true,
	"stroke-dasharray":            true,
	"stroke-dashoffset":           true,
	"stroke-linecap":              true,
	"stroke-linejoin":             true,
	"stroke-miterlimit":           true,
	"stroke-opacity":              true,
	"stroke-width":                true,
	"text-anchor":                 true,
	"text-decoration":             true,
	"text-rendering":              true,
	"transform":                   true,
	"unicode-bidi":                true,
	"vector-effect":               true,
	"visibility":                  true,
	"word-spacing":                true,
	"writing-mode":                true,
}

type declaration struct {
	property string
	value    string
}

func parseStyle(style string) []declaration {
	var decls []declaration

	for _, part := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}

		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)

		if prop == "" || value == "" {
			continue
		}

		decls = append(decls, declaration{property: prop, value: value})
	}

	return decls
}

// convertStyleToAttrs moves presentation properties out of style attributes.
// Declarations marked !important or without an attribute equivalent stay in
// the style attribute, which is dropped once empty.
func convertStyleToAttrs(d *document) {
	d.elements(func(n *node) {
		style, ok := n.getAttr("style")
		if !ok {
			return
		}

		var rest []string

		for _, decl := range parseStyle(style) {
			if !presentationAttrs[decl.property] || strings.Contains(decl.value, "!important") {
				rest = append(rest, decl.property+":"+decl.value)
				continue
			}

			n.setAttr(decl.property, decl.value)
		}

		if len(rest) == 0 {
			n.removeAttr("style")
			return
		}

		n.setAttr("style", strings.Join(rest, ";"))
	})
}
