package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// File extensions of the conversion.
const (
	SourceExt    = ".svg"
	ComponentExt = ".svelte"
)

var (
	identRe      = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	camelBoundRe = regexp.MustCompile(`([a-z])([A-Z])`)
)

// IsIdentifier reports whether s can be used as a binding name unchanged.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// BindingName returns the identifier-safe name for an attribute key.
// Keys that already are lower camelCase identifiers are returned as is;
// others are split on hyphens (and namespace colons) and camel-cased.
func BindingName(key string) string {
	if IsIdentifier(key) {
		return key
	}

	tokens := splitKey(key)

	var sb strings.Builder

	sb.Grow(len(key))

	for i, tok := range tokens {
		if i == 0 {
			sb.WriteString(withFirst(tok, unicode.ToLower))
			continue
		}

		sb.WriteString(withFirst(tok, unicode.ToUpper))
	}

	return sb.String()
}

// isSeparator returns true for runes that split an attribute key into words.
func isSeparator(r rune) bool {
	return r == '-' || r == ':' || r == '.'
}

// splitKey splits a key into its non-empty words.
func splitKey(key string) []string {
	return strings.FieldsFunc(key, isSeparator)
}

func withFirst(s string, mapRune func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(mapRune(r)) + s[size:]
}

// ComponentName converts a file base name to a PascalCase component name.
// Hyphens, underscores, dots, spaces and lower-to-upper camel boundaries
// separate words. Each word gets an upper-case first letter and the rest in
// lower case, so digits never start a new word: "grid-2x2" is "Grid2x2".
func ComponentName(base string) string {
	spaced := camelBoundRe.ReplaceAllString(base, "$1 $2")
	words := strings.FieldsFunc(spaced, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})

	var sb strings.Builder

	sb.Grow(len(base))

	for _, word := range words {
		sb.WriteString(withFirst(strings.ToLower(word), unicode.ToUpper))
	}

	return sb.String()
}

// ComponentFileName derives the component file name for a source path.
func ComponentFileName(sourcePath string) string {
	return ComponentFile(sourcePath, ComponentExt)
}

// ComponentFile is ComponentFileName with a custom extension.
func ComponentFile(sourcePath, ext string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, SourceExt)

	return ComponentName(base) + ext
}
