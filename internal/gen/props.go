package gen

import (
	"strconv"
	"strings"

	"svg2svelte/internal/common"
	"svg2svelte/internal/naming"
	"svg2svelte/internal/svg"
)

// Attribute names with special treatment.
const (
	classAttr           = "class"
	classBinding        = "className"
	ariaLabelAttr       = "aria-label"
	ariaDescriptionAttr = "aria-description"
	titleTag            = "title"
	descTag             = "desc"
)

// restBinding collects the props not declared explicitly.
const restBinding = "rest"

// fixedAttrs are root attributes rendered literally and never exposed as props.
var fixedAttrs = map[string]bool{
	"viewBox":             true,
	"preserveAspectRatio": true,
}

// PropSpec describes how one root attribute is surfaced on the component.
type PropSpec struct {
	// SourceKey is the attribute name as it appears on the root element.
	SourceKey string
	// BindingName is the script identifier holding the value.
	BindingName string
	// DefaultValue is the attribute value from the source document.
	DefaultValue string
	// Exposed is false for attributes that are rendered literally.
	Exposed bool
}

// NewPropSpec derives the prop for a root attribute.
func NewPropSpec(key, value string) PropSpec {
	binding := naming.BindingName(key)
	if key == classAttr {
		binding = classBinding
	}

	return PropSpec{
		SourceKey:    key,
		BindingName:  binding,
		DefaultValue: value,
		Exposed:      !fixedAttrs[key],
	}
}

// Renamed reports whether the binding differs from the attribute name.
func (p PropSpec) Renamed() bool {
	return p.BindingName != p.SourceKey
}

// Declaration renders the destructuring entry of an exposed prop.
func (p PropSpec) Declaration() string {
	def := jsString(p.DefaultValue)
	if !p.Renamed() {
		return p.BindingName + " = " + def
	}

	return strconv.Quote(p.SourceKey) + ": " + p.BindingName + " = " + def
}

// Attribute renders the prop as an attribute of the root tag.
func (p PropSpec) Attribute() string {
	switch {
	case !p.Exposed:
		return literalAttr(p.SourceKey, p.DefaultValue)
	case p.Renamed():
		return p.SourceKey + "={" + p.BindingName + "}"
	default:
		return "{" + p.BindingName + "}"
	}
}

// rootAttributes returns the root attributes to surface, in order. Title and
// desc children become ARIA attributes; blank values and, unless enabled,
// the class attribute are dropped. The tree is not modified.
func (g *Generator) rootAttributes(root *svg.Node) *svg.OrderedMap[string] {
	attrs := svg.Clone(root.Attributes)

	if label := childText(root, titleTag); label != "" {
		attrs.Set(ariaLabelAttr, label)
	}

	if description := childText(root, descTag); description != "" {
		attrs.Set(ariaDescriptionAttr, description)
	}

	return svg.Filter(attrs, func(key, value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		return key != classAttr || g.config.IncludeClass
	})
}

// propSpecs builds a PropSpec per surfaced root attribute. Exposed bindings
// are unique: a later attribute whose binding is taken, either by an earlier
// prop or by the rest binding, gets a numeric suffix.
func (g *Generator) propSpecs(root *svg.Node) []PropSpec {
	attrs := g.rootAttributes(root)
	used := map[string]bool{restBinding: true}

	specs := make([]PropSpec, 0, attrs.Len())
	for key, value := range svg.All(attrs) {
		spec := NewPropSpec(key, value)
		if spec.Exposed {
			spec.BindingName = uniqueBinding(spec.BindingName, used)
		}

		specs = append(specs, spec)
	}

	return specs
}

func uniqueBinding(name string, used map[string]bool) string {
	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}

	used[candidate] = true

	return candidate
}

// childText returns the trimmed text of the first child with the given tag.
func childText(n *svg.Node, tag string) string {
	nodes, _ := n.Children.Get(tag)

	first, ok := common.First(nodes)
	if !ok {
		return ""
	}

	return strings.TrimSpace(first.Text)
}
