package normalize

// Error reports that the input could not be cleaned up.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "SVG preprocessing failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Normalizer runs a fixed Config over raw SVG text. It holds no mutable
// state and is safe for concurrent use.
type Normalizer struct {
	config Config
}

// New creates a Normalizer bound to config.
func New(config Config) *Normalizer {
	return &Normalizer{config: Config{transforms: append([]Transform(nil), config.transforms...)}}
}

// Steps returns the names of the transforms in execution order.
func (n *Normalizer) Steps() []string {
	return n.config.Names()
}

// Normalize returns the cleaned text, or an *Error if the markup is
// malformed.
func (n *Normalizer) Normalize(raw string) (string, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return "", &Error{Err: err}
	}

	for _, t := range n.config.transforms {
		if err := t.apply(doc); err != nil {
			return "", &Error{Err: err}
		}
	}

	return doc.String(), nil
}
