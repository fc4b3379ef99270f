package normalize

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

// Media types the minifier is registered for. Style attributes and
// <style> bodies are handed from the SVG minifier to the CSS one.
const (
	svgMediaType = "image/svg+xml"
	cssMediaType = "text/css"
)

// newMarkupMinifier builds the minifier shared by every Normalize call of a
// configuration. minify.M is safe for concurrent use.
func newMarkupMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(svgMediaType, svg.Minify)
	m.AddFunc(cssMediaType, css.Minify)

	return m
}

// minifyMarkup returns the transform that runs the document through m: it
// drops comments and metadata, shortens numbers, colors and path data, and
// trims text. The result replaces the document.
func minifyMarkup(m *minify.M) func(d *document) error {
	return func(d *document) error {
		out, err := m.String(svgMediaType, d.String())
		if err != nil {
			return fmt.Errorf("minifying markup: %w", err)
		}

		minified, err := parseDocument(out)
		if err != nil {
			return fmt.Errorf("reading minified markup: %w", err)
		}

		d.nodes = minified.nodes

		return nil
	}
}
