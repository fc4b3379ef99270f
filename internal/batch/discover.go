package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"svg2svelte/internal/diagnostic"
	"svg2svelte/internal/naming"
)

// Source file patterns, matched against slash-separated relative paths.
const (
	flatPattern      = "*" + naming.SourceExt
	recursivePattern = "**/*" + naming.SourceExt
)

// Selection is the result of a source file search.
type Selection struct {
	// Files are the sources to convert, in lexical order.
	Files []string
	// Diagnostics holds a skipped entry per excluded source.
	Diagnostics diagnostic.Diagnostics
}

// Discover lists the source files under root in lexical order. Only the top
// level is searched unless recursive is set. Files matching any exclude
// pattern, by relative path or by base name, are skipped and recorded.
func Discover(fsys afero.Fs, root string, recursive bool, exclude []string) (*Selection, error) {
	pattern := flatPattern
	if recursive {
		pattern = recursivePattern
	}

	sel := &Selection{}

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && !recursive {
				return filepath.SkipDir
			}

			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", path, err)
		}

		rel = filepath.ToSlash(rel)

		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return fmt.Errorf("matching %s: %w", rel, err)
		}

		if !matched {
			return nil
		}

		if by, ok := excludedBy(exclude, rel); ok {
			sel.Diagnostics.AddInfo(diagnostic.CodeSkipped, "excluded by "+by, rel, "")
			return nil
		}

		sel.Files = append(sel.Files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return sel, nil
}

// Skipped returns the relative paths of the excluded sources.
func (s *Selection) Skipped() []string {
	var out []string

	for _, d := range s.Diagnostics.Infos {
		if d.Code == diagnostic.CodeSkipped {
			out = append(out, d.File)
		}
	}

	return out
}

// excludedBy returns the first pattern matching the relative path or the
// base name.
func excludedBy(patterns []string, rel string) (string, bool) {
	base := filepath.Base(filepath.FromSlash(rel))

	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return pattern, true
		}

		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return pattern, true
		}
	}

	return "", false
}

