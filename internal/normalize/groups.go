package normalize

// groupBlockers are group attributes that cannot be pushed down to a child
// without changing rendering.
var groupBlockers = []string{"id", "filter", "clip-path", "mask"}

// collapseGroups pushes the attributes of single-child groups down to that
// child, then unwraps groups left without attributes.
func collapseGroups(d *document) {
	d.nodes = collapseList(d.nodes)
}

func collapseList(list []*node) []*node {
	out := make([]*node, 0, len(list))

	for _, n := range list {
		if n.kind != kindElement {
			out = append(out, n)
			continue
		}

		n.children = collapseList(n.children)

		if n.name != "g" {
			out = append(out, n)
			continue
		}

		moveAttrsToOnlyChild(n)

		if len(n.attrs) == 0 {
			out = append(out, n.children...)
			continue
		}

		out = append(out, n)
	}

	return out
}

func moveAttrsToOnlyChild(g *node) {
	if len(g.children) != 1 || len(g.attrs) == 0 {
		return
	}

	c := g.children[0]
	if c.kind != kindElement {
		return
	}

	if _, ok := c.getAttr("id"); ok {
		return
	}

	for _, name := range groupBlockers {
		if _, ok := g.getAttr(name); ok {
			return
		}
	}

	for _, a := range g.attrs {
		if a.Name == "transform" {
			continue
		}

		if existing, ok := c.getAttr(a.Name); ok && existing != a.Value && existing != "inherit" {
			return
		}
	}

	for _, a := range g.attrs {
		existing, ok := c.getAttr(a.Name)

		switch {
		case a.Name == "transform" && ok:
			c.setAttr("transform", a.Value+" "+existing)
		case !ok || existing == "inherit":
			c.setAttr(a.Name, a.Value)
		}
	}

	g.attrs = nil
}
