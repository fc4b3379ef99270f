// Package gen renders Svelte 5 components from validated SVG trees.
//
// Generation approach uses text/template for the component skeleton and a
// string builder for the nested markup.
//
// Output layout:
//   - A <script lang="ts"> block destructuring $props() with a default per
//     root attribute and a trailing ...rest
//   - The root <svg> tag with one attribute per line bound to its prop
//   - Child elements reproduced verbatim, two spaces per nesting level
package gen
