package gen

import (
	"strings"

	"svg2svelte/internal/svg"
)

const indentUnit = "  "

// writeChildren writes every child element of n at the given depth, in entry
// order with repeated tags expanded in document order. Entries for which skip
// returns true are left out.
func writeChildren(sb *strings.Builder, n *svg.Node, depth int, skip func(name string) bool) {
	for name, nodes := range svg.All(n.Children) {
		if skip != nil && skip(name) {
			continue
		}

		for _, child := range nodes {
			writeElement(sb, child, depth)
		}
	}
}

// writeElement writes one element and its subtree, each line terminated by a
// newline.
func writeElement(sb *strings.Builder, n *svg.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(n.Name)

	for key, value := range svg.All(n.Attributes) {
		sb.WriteByte(' ')
		sb.WriteString(literalAttr(key, value))
	}

	switch {
	case n.HasChildren():
		sb.WriteString(">\n")

		if n.Text != "" {
			sb.WriteString(indent + indentUnit)
			sb.WriteString(escapeMarkup(n.Text))
			sb.WriteByte('\n')
		}

		writeChildren(sb, n, depth+1, nil)
		sb.WriteString(indent + "</" + n.Name + ">\n")
	case n.Text != "":
		sb.WriteByte('>')
		sb.WriteString(escapeMarkup(n.Text))
		sb.WriteString("</" + n.Name + ">\n")
	default:
		sb.WriteString(" />\n")
	}
}
