// Package normalize cleans raw SVG text before it is parsed.
//
// A Normalizer runs a fixed, ordered list of transforms over a lightweight
// document model. The DOCTYPE (after its entities are expanded), the XML
// declaration and editor data are removed first. The tdewolff minifier then
// handles comments, metadata, numbers, colors, path data and inline CSS.
// A few passes it does not offer follow: presentation attributes out of
// style, shapes to paths, group collapsing and a deterministic attribute
// sort.
//
// Transforms never remove <image>, <style> or nested <svg> elements outside
// <metadata>, nor any subtree containing them, so the parser can still
// reject such documents.
package normalize
