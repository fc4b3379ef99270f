package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// floatPrecision is the number of decimals kept in generated path data.
const floatPrecision = 3

// reNumber matches one number of a coordinate list. Lists may omit
// separators before a sign or a second decimal point ("1-2", ".5.5").
var reNumber = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+\.?)(?:[eE][-+]?\d+)?`)

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)

	return f, err == nil
}

// formatNumber rounds to floatPrecision decimals and drops redundant zeros,
// including the leading one ("0.5" -> ".5").
func formatNumber(f float64) string {
	scale := math.Pow(10, floatPrecision)
	f = math.Round(f*scale) / scale

	if f == 0 {
		return "0"
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)

	switch {
	case strings.HasPrefix(s, "0."):
		s = s[1:]
	case strings.HasPrefix(s, "-0."):
		s = "-" + s[2:]
	}

	return s
}

// convertShapeToPath rewrites rect, line, polyline and polygon as paths.
// Circles and ellipses are kept since their arc form is longer.
func convertShapeToPath(d *document) {
	d.elements(func(n *node) {
		switch n.name {
		case "rect":
			rectToPath(n)
		case "line":
			lineToPath(n)
		case "polyline", "polygon":
			polyToPath(n)
		}
	})
}

func numbers(n *node, names ...string) ([]float64, bool) {
	out := make([]float64, 0, len(names))

	for _, name := range names {
		v, ok := n.getAttr(name)
		if !ok {
			v = "0"
		}

		f, ok := parseNumber(v)
		if !ok {
			return nil, false
		}

		out = append(out, f)
	}

	return out, true
}

func rectToPath(n *node) {
	if _, ok := n.getAttr("rx"); ok {
		return
	}

	if _, ok := n.getAttr("ry"); ok {
		return
	}

	if _, ok := n.getAttr("width"); !ok {
		return
	}

	if _, ok := n.getAttr("height"); !ok {
		return
	}

	v, ok := numbers(n, "x", "y", "width", "height")
	if !ok {
		return
	}

	x, y, w, h := v[0], v[1], v[2], v[3]
	path := "M" + formatNumber(x) + " " + formatNumber(y) +
		"H" + formatNumber(x+w) +
		"V" + formatNumber(y+h) +
		"H" + formatNumber(x) + "z"

	n.name = "path"
	n.filterAttrs(func(a attr) bool {
		return a.Name != "x" && a.Name != "y" && a.Name != "width" && a.Name != "height"
	})
	n.setAttr("d", path)
}

func lineToPath(n *node) {
	v, ok := numbers(n, "x1", "y1", "x2", "y2")
	if !ok {
		return
	}

	path := "M" + formatNumber(v[0]) + " " + formatNumber(v[1]) + " " + formatNumber(v[2]) + " " + formatNumber(v[3])

	n.name = "path"
	n.filterAttrs(func(a attr) bool {
		return a.Name != "x1" && a.Name != "y1" && a.Name != "x2" && a.Name != "y2"
	})
	n.setAttr("d", path)
}

func polyToPath(n *node) {
	raw, ok := n.getAttr("points")
	if !ok {
		return
	}

	fields := reNumber.FindAllString(raw, -1)
	if len(fields) < 4 {
		return
	}

	coords := make([]string, 0, len(fields))

	for _, f := range fields[:len(fields)-len(fields)%2] {
		v, ok := parseNumber(f)
		if !ok {
			return
		}

		coords = append(coords, formatNumber(v))
	}

	path := "M" + strings.Join(coords, " ")
	if n.name == "polygon" {
		path += "z"
	}

	n.name = "path"
	n.removeAttr("points")
	n.setAttr("d", path)
}
