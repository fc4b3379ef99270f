package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse converts cleaned SVG text into a validated tree.
// The input is not modified.
func Parse(text string) (*Node, error) {
	trimmed := strings.TrimSpace(text)

	if !strings.HasPrefix(trimmed, "<"+RootTag) {
		return nil, &ParseError{Kind: KindMissingRoot, Msg: "Content must start with <svg> tag"}
	}

	root, err := buildTree(trimmed)
	if err != nil {
		return nil, err
	}

	if err := Validate(root); err != nil {
		return nil, err
	}

	return root, nil
}

// Validate checks the semantic rules on an already built tree.
func Validate(root *Node) error {
	if root == nil || root.Name != RootTag || root.isBare() {
		return &ParseError{Kind: KindNoRootElement, Msg: "No SVG element found"}
	}

	if !hasElementChildren(root) {
		return &ParseError{Kind: KindNoChildElements, Msg: "SVG has no child elements found"}
	}

	return checkReserved(root)
}

// hasElementChildren reports whether root has a child that is more than
// plain text. Children like <title>Home</title> become props, not markup.
func hasElementChildren(root *Node) bool {
	for _, children := range All(root.Children) {
		for _, child := range children {
			if !child.isBare() {
				return true
			}
		}
	}

	return false
}

// checkReserved walks the tree depth-first and reports the first reserved
// child entry it meets.
func checkReserved(n *Node) error {
	for name, children := range All(n.Children) {
		if kind, msg, ok := lookupReserved(name); ok {
			return &ParseError{Kind: KindUnsupportedElement, Msg: msg, Reserved: kind, Line: children[0].Line}
		}

		for _, child := range children {
			if err := checkReserved(child); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildTree reads the token stream and assembles the element tree, enforcing
// well-formedness along the way.
func buildTree(text string) (*Node, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fromDecoderError(err, decoder)
		}

		line, _ := decoder.InputPos()

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, syntaxError(line, "Multiple possible root nodes found.")
			}

			node, err := newElement(t, line)
			if err != nil {
				return nil, err
			}

			if len(stack) == 0 {
				root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}

			stack = append(stack, node)
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 {
				return nil, syntaxError(line, "Closing tag '%s' has not been opened.", name)
			}

			top := stack[len(stack)-1]
			if top.Name != name {
				return nil, syntaxError(line,
					"Expected closing tag '%s' (opened in line %d) instead of closing tag '%s'.",
					top.Name, top.Line, name)
			}

			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)

				continue
			}

			if strings.TrimSpace(string(t)) != "" {
				return nil, syntaxError(line, "Extra text at the end")
			}
		}
	}

	if len(stack) > 0 {
		return nil, syntaxError(stack[0].Line, "Unclosed tag '%s'.", stack[0].Name)
	}

	return root, nil
}

func newElement(t xml.StartElement, line int) (*Node, error) {
	node := NewNode(qualifiedName(t.Name))
	node.Line = line

	for _, attr := range t.Attr {
		key := qualifiedName(attr.Name)
		if _, dup := node.Attributes.Get(key); dup {
			return nil, syntaxError(line, "Attribute '%s' is repeated.", key)
		}

		node.Attributes.Set(key, attr.Value)
	}

	return node, nil
}

// qualifiedName rebuilds the prefixed name as written in the document.
// Raw tokens carry the prefix, not the resolved namespace URL, in Space.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}

	return n.Space + ":" + n.Local
}

func fromDecoderError(err error, decoder *xml.Decoder) *ParseError {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return syntaxError(syn.Line, "%s", syn.Msg)
	}

	line, _ := decoder.InputPos()

	return syntaxError(line, "%s", err.Error())
}
