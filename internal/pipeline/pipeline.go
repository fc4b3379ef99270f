// Package pipeline chains normalization, parsing and generation into a single
// conversion from raw SVG text to Svelte component source.
package pipeline

import (
	"svg2svelte/internal/gen"
	"svg2svelte/internal/naming"
	"svg2svelte/internal/normalize"
	"svg2svelte/internal/svg"
)

// Options controls a conversion. The zero value is the default.
type Options struct {
	// IncludeClass keeps the root class attribute as a className prop.
	IncludeClass bool
}

// Converter runs the three conversion stages. It is safe for concurrent use.
type Converter struct {
	normalizer *normalize.Normalizer
	generator  *gen.Generator
}

// New creates a Converter that cleans input with normalizer.
func New(normalizer *normalize.Normalizer, opts Options) *Converter {
	return &Converter{
		normalizer: normalizer,
		generator:  gen.NewGenerator(gen.GeneratorConfig{IncludeClass: opts.IncludeClass}),
	}
}

// NewDefault creates a Converter using the default cleanup configuration.
func NewDefault(opts Options) *Converter {
	return New(normalize.New(normalize.DefaultConfig()), opts)
}

// Convert turns raw SVG text into component source. Errors from the stages
// are returned as is: *normalize.Error or *svg.ParseError.
func (c *Converter) Convert(raw string) (string, error) {
	cleaned, err := c.normalizer.Normalize(raw)
	if err != nil {
		return "", err
	}

	tree, err := svg.Parse(cleaned)
	if err != nil {
		return "", err
	}

	return c.generator.Generate(tree), nil
}

// ConvertFile converts raw and names the result after sourcePath, using ext
// as the component file extension.
func (c *Converter) ConvertFile(raw, sourcePath, ext string) (gen.GeneratedFile, error) {
	out, err := c.Convert(raw)
	if err != nil {
		return gen.GeneratedFile{}, err
	}

	return gen.GeneratedFile{
		Filename: naming.ComponentFile(sourcePath, ext),
		Content:  []byte(out),
	}, nil
}

// Convert turns raw SVG text into component source with the default cleanup
// configuration.
func Convert(raw string, opts Options) (string, error) {
	return NewDefault(opts).Convert(raw)
}
