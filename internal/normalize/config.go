package normalize

// Transform is a named document rewrite.
type Transform struct {
	Name  string
	apply func(d *document) error
}

// pass adapts a rewrite that cannot fail.
func pass(rewrite func(d *document)) func(d *document) error {
	return func(d *document) error {
		rewrite(d)
		return nil
	}
}

// Config is the ordered list of transforms a Normalizer runs.
// It is built by DefaultConfig and cannot be extended from outside the
// package.
type Config struct {
	transforms []Transform
}

// Names returns the transform names in execution order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.transforms))
	for _, t := range c.transforms {
		names = append(names, t.Name)
	}

	return names
}

// Without returns a copy of the configuration minus the named transforms.
func (c Config) Without(names ...string) Config {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}

	out := Config{}

	for _, t := range c.transforms {
		if !skip[t.Name] {
			out.transforms = append(out.transforms, t)
		}
	}

	return out
}

// DefaultConfig returns the fixed cleanup pipeline. The prolog and editor
// data go first, then the minifier does the bulk of the work, and the
// remaining passes cover what it leaves alone.
//
// It has no raster image or stylesheet removal; validation rejects those
// elements later.
func DefaultConfig() Config {
	return Config{transforms: []Transform{
		{"removeDoctype", pass(removeDoctype)},
		{"removeXMLProcInst", pass(removeXMLProcInst)},
		{"removeEditorsNSData", pass(removeEditorsNSData)},
		{"removeDesc", pass(removeDesc)},
		{"minify", minifyMarkup(newMarkupMinifier())},
		{"convertStyleToAttrs", pass(convertStyleToAttrs)},
		{"convertShapeToPath", pass(convertShapeToPath)},
		{"collapseGroups", pass(collapseGroups)},
		{"removeEmptyContainers", pass(removeEmptyContainers)},
		{"removeXMLNS", pass(removeXMLNS)},
		{"removeUnusedNS", pass(removeUnusedNS)},
		{"sortAttrs", pass(sortAttrs)},
	}}
}
