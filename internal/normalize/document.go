package normalize

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

type nodeKind int

const (
	kindElement nodeKind = iota
	kindText
	kindComment
	kindProcInst
	kindDirective
)

type attr struct {
	Name  string
	Value string
}

// node is one item of the document: an element, a run of text, a comment,
// a processing instruction or a directive (doctype).
type node struct {
	kind     nodeKind
	name     string // element name or processing instruction target
	text     string // text, comment, directive or instruction body
	attrs    []attr
	children []*node
}

type document struct {
	nodes []*node
}

// preservesSpace lists elements whose whitespace-only text is significant.
var preservesSpace = map[string]bool{
	"text":     true,
	"tspan":    true,
	"textPath": true,
}

func (n *node) isElement(names ...string) bool {
	if n.kind != kindElement {
		return false
	}

	if len(names) == 0 {
		return true
	}

	for _, name := range names {
		if n.name == name {
			return true
		}
	}

	return false
}

func (n *node) attrIndex(name string) int {
	for i, a := range n.attrs {
		if a.Name == name {
			return i
		}
	}

	return -1
}

func (n *node) getAttr(name string) (string, bool) {
	if i := n.attrIndex(name); i >= 0 {
		return n.attrs[i].Value, true
	}

	return "", false
}

// setAttr overwrites in place or appends.
func (n *node) setAttr(name, value string) {
	if i := n.attrIndex(name); i >= 0 {
		n.attrs[i].Value = value
		return
	}

	n.attrs = append(n.attrs, attr{Name: name, Value: value})
}

func (n *node) removeAttr(name string) {
	n.filterAttrs(func(a attr) bool { return a.Name != name })
}

func (n *node) filterAttrs(keep func(a attr) bool) {
	kept := make([]attr, 0, len(n.attrs))

	for _, a := range n.attrs {
		if keep(a) {
			kept = append(kept, a)
		}
	}

	n.attrs = kept
}

// textContent concatenates all descendant text.
func (n *node) textContent() string {
	var sb strings.Builder

	for _, c := range n.children {
		switch c.kind {
		case kindText:
			sb.WriteString(c.text)
		case kindElement:
			sb.WriteString(c.textContent())
		}
	}

	return sb.String()
}

// elements visits every element depth-first, parents before children.
func (d *document) elements(visit func(n *node)) {
	var walk func(list []*node)

	walk = func(list []*node) {
		for _, n := range list {
			if n.kind != kindElement {
				continue
			}

			visit(n)
			walk(n.children)
		}
	}

	walk(d.nodes)
}

// prune drops nodes for which drop returns true. Parents are tested before
// their children.
func (d *document) prune(drop func(n *node) bool) {
	d.nodes = pruneList(d.nodes, drop)
}

func pruneList(list []*node, drop func(n *node) bool) []*node {
	kept := make([]*node, 0, len(list))

	for _, n := range list {
		if drop(n) {
			continue
		}

		n.children = pruneList(n.children, drop)
		kept = append(kept, n)
	}

	return kept
}

// pruneAfter is like prune but tests children before their parent, so a
// parent emptied by the pass can itself be dropped.
func (d *document) pruneAfter(drop func(n *node) bool) {
	d.nodes = pruneListAfter(d.nodes, drop)
}

func pruneListAfter(list []*node, drop func(n *node) bool) []*node {
	kept := make([]*node, 0, len(list))

	for _, n := range list {
		n.children = pruneListAfter(n.children, drop)
		if drop(n) {
			continue
		}

		kept = append(kept, n)
	}

	return kept
}

// protected names the elements the parser must get to see.
var protected = map[string]bool{
	"svg":   true,
	"image": true,
	"style": true,
}

// holdsProtected reports whether n or any descendant is a protected element.
func holdsProtected(n *node) bool {
	if n.kind != kindElement {
		return false
	}

	if protected[n.name] {
		return true
	}

	for _, c := range n.children {
		if holdsProtected(c) {
			return true
		}
	}

	return false
}

// dropElements prunes elements matched by match unless removing them would
// hide a protected element from validation.
func (d *document) dropElements(match func(n *node) bool) {
	d.prune(func(n *node) bool {
		return n.kind == kindElement && match(n) && !holdsProtected(n)
	})
}

// reEntityDecl matches a general internal entity declaration of a DOCTYPE
// subset, as Illustrator writes for its namespace URLs.
var reEntityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'<>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// declareEntities makes the entities declared in a directive known to the
// decoder, so later references to them expand instead of failing.
func declareEntities(decoder *xml.Decoder, directive string) {
	for _, m := range reEntityDecl.FindAllStringSubmatch(directive, -1) {
		if decoder.Entity == nil {
			decoder.Entity = make(map[string]string)
		}

		decoder.Entity[m[1]] = m[2] + m[3]
	}
}

// parseDocument reads text into a document. It fails on malformed markup but
// tolerates several top-level elements, which the parser reports later.
func parseDocument(text string) (*document, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &document{}

	var stack []*node

	appendNode := func(n *node) {
		if len(stack) == 0 {
			doc.nodes = append(doc.nodes, n)
			return
		}

		parent := stack[len(stack)-1]
		parent.children = append(parent.children, n)
	}

	for {
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &node{kind: kindElement, name: qualifiedName(t.Name)}
			for _, a := range t.Attr {
				el.attrs = append(el.attrs, attr{Name: qualifiedName(a.Name), Value: a.Value})
			}

			appendNode(el)
			stack = append(stack, el)
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 || stack[len(stack)-1].name != name {
				line, _ := decoder.InputPos()
				return nil, fmt.Errorf("unexpected closing tag </%s> at line %d", name, line)
			}

			stack = stack[:len(stack)-1]
		case xml.CharData:
			s := string(t)
			if strings.TrimSpace(s) == "" && (len(stack) == 0 || !preservesSpace[stack[len(stack)-1].name]) {
				continue
			}

			appendNode(&node{kind: kindText, text: s})
		case xml.Comment:
			appendNode(&node{kind: kindComment, text: string(t)})
		case xml.ProcInst:
			appendNode(&node{kind: kindProcInst, name: t.Target, text: string(t.Inst)})
		case xml.Directive:
			declareEntities(decoder, string(t))
			appendNode(&node{kind: kindDirective, text: string(t)})
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed tag <%s>", stack[0].name)
	}

	return doc, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}

	return n.Space + ":" + n.Local
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

// String serializes the document without insignificant whitespace.
func (d *document) String() string {
	var buf bytes.Buffer

	for _, n := range d.nodes {
		writeNode(&buf, n)
	}

	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *node) {
	switch n.kind {
	case kindText:
		buf.WriteString(textEscaper.Replace(n.text))
	case kindComment:
		buf.WriteString("<!--" + n.text + "-->")
	case kindProcInst:
		buf.WriteString("<?" + n.name)
		if n.text != "" {
			buf.WriteString(" " + n.text)
		}

		buf.WriteString("?>")
	case kindDirective:
		buf.WriteString("<!" + n.text + ">")
	case kindElement:
		buf.WriteString("<" + n.name)

		for _, a := range n.attrs {
			buf.WriteString(" " + a.Name + `="` + attrEscaper.Replace(a.Value) + `"`)
		}

		if len(n.children) == 0 {
			buf.WriteString("/>")
			return
		}

		buf.WriteString(">")

		for _, c := range n.children {
			writeNode(buf, c)
		}

		buf.WriteString("</" + n.name + ">")
	}
}
