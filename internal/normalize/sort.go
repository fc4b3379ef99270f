package normalize

import (
	"slices"
	"strings"
)

// attrOrder lists the attribute groups sorted first, by the part of the name
// before the first hyphen.
var attrOrder = []string{
	"id", "width", "height", "x", "x1", "x2", "y", "y1", "y2",
	"cx", "cy", "r", "fill", "stroke", "marker", "d", "points",
}

func nsPriority(name string) int {
	switch {
	case name == "xmlns":
		return 3
	case strings.HasPrefix(name, "xmlns:"):
		return 2
	case strings.Contains(name, ":"):
		return 1
	default:
		return 0
	}
}

func compareAttrNames(a, b string) int {
	if p := nsPriority(b) - nsPriority(a); p != 0 {
		return p
	}

	aPart, _, _ := strings.Cut(a, "-")
	bPart, _, _ := strings.Cut(b, "-")

	if aPart != bPart {
		ai := slices.Index(attrOrder, aPart)
		bi := slices.Index(attrOrder, bPart)

		switch {
		case ai >= 0 && bi >= 0:
			return ai - bi
		case ai >= 0:
			return -1
		case bi >= 0:
			return 1
		}
	}

	return strings.Compare(a, b)
}

// sortAttrs orders attributes deterministically: namespace declarations,
// then prefixed names, then the well-known geometry and paint groups, then
// the rest alphabetically.
func sortAttrs(d *document) {
	d.elements(func(n *node) {
		slices.SortStableFunc(n.attrs, func(a, b attr) int {
			return compareAttrNames(a.Name, b.Name)
		})
	})
}
