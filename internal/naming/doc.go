// Package naming derives identifiers from SVG attribute names and file names.
//
// Key functions:
//   - BindingName: identifier-safe prop name for an attribute ("stroke-width" -> "strokeWidth")
//   - ComponentName: PascalCase component name ("arrow-left" -> "ArrowLeft")
//   - ComponentFileName: output file name for a source path ("icons/arrow-left.svg" -> "ArrowLeft.svelte")
package naming
