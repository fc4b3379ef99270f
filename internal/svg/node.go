package svg

// RootTag is the tag name every convertible document must have at its root.
const RootTag = "svg"

// Node is a single markup element.
type Node struct {
	// Name is the qualified tag name, including a namespace prefix if any.
	Name string
	// Attributes holds attribute values in document order.
	Attributes *OrderedMap[string]
	// Children groups child elements by tag name. Entries are ordered by the
	// first occurrence of each name; repeated names append to that entry.
	Children *OrderedMap[[]*Node]
	// Text is the trimmed character data directly inside the element.
	Text string
	// Line is the line number of the opening tag.
	Line int
}

// NewNode returns an empty node with the given tag name.
func NewNode(name string) *Node {
	return &Node{
		Name:       name,
		Attributes: NewOrderedMap[string](),
		Children:   NewOrderedMap[[]*Node](),
	}
}

// AppendChild adds child under its tag name entry.
func (n *Node) AppendChild(child *Node) {
	siblings, _ := n.Children.Get(child.Name)
	n.Children.Set(child.Name, append(siblings, child))
}

// HasChildren reports whether the node has at least one child element.
func (n *Node) HasChildren() bool {
	return n.Children.Len() > 0
}

// isBare reports whether the element carries neither attributes nor children,
// i.e. it reduces to plain text.
func (n *Node) isBare() bool {
	return n.Attributes.Len() == 0 && !n.HasChildren()
}
