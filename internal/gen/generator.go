package gen

import (
	"bytes"
	"strings"
	"text/template"

	"svg2svelte/internal/svg"
)

// GeneratorConfig holds configuration for component generation.
type GeneratorConfig struct {
	// IncludeClass keeps the root class attribute as a className prop.
	IncludeClass bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		IncludeClass: false,
	}
}

// Generator turns validated SVG trees into Svelte component source.
// It holds no per-call state and is safe for concurrent use.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig {
	return g.config
}

// GeneratedFile represents a generated component file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "ArrowLeft.svelte").
	Filename string
	// Content is the component source.
	Content []byte
}

// templateData holds all data needed for the component template.
type templateData struct {
	Tag       string
	Props     []PropSpec
	RootAttrs []string
	Rest      string
	Children  string
}

// Generate renders the component for a tree accepted by svg.Validate.
// The same tree and configuration always produce the same output.
func (g *Generator) Generate(root *svg.Node) string {
	data := g.buildTemplateData(root)

	var buf bytes.Buffer

	// The template only ranges over prepared strings; executing it cannot fail.
	if err := componentTemplate.Execute(&buf, data); err != nil {
		panic("component template: " + err.Error())
	}

	return buf.String()
}

// GenerateFile renders the component and names it after filename.
func (g *Generator) GenerateFile(root *svg.Node, filename string) GeneratedFile {
	return GeneratedFile{
		Filename: filename,
		Content:  []byte(g.Generate(root)),
	}
}

func (g *Generator) buildTemplateData(root *svg.Node) *templateData {
	data := &templateData{
		Tag:  root.Name,
		Rest: restBinding,
	}

	for _, spec := range g.propSpecs(root) {
		if spec.Exposed {
			data.Props = append(data.Props, spec)
		}

		data.RootAttrs = append(data.RootAttrs, spec.Attribute())
	}

	var sb strings.Builder

	writeChildren(&sb, root, 1, isAriaSource)
	data.Children = strings.TrimSuffix(sb.String(), "\n")

	return data
}

// isAriaSource reports whether a root child only feeds ARIA attributes.
func isAriaSource(name string) bool {
	return name == titleTag || name == descTag
}

var componentTemplate = template.Must(template.New("component").Parse(`<script lang="ts">
  let {
{{- range .Props}}
    {{.Declaration}},
{{- end}}
    ...{{.Rest}}
  } = $props();
</script>

<{{.Tag}}
{{- range .RootAttrs}}
  {{.}}
{{- end}}
  {...{{.Rest}}}
>
{{- if .Children}}
{{.Children}}
{{- end}}
</{{.Tag}}>
`))
