// Package svg parses cleaned SVG markup into an attributed tree and validates
// the structural rules a convertible icon must satisfy.
//
// The tree mirrors the object shape of the document: every element keeps its
// attributes and its child elements in two separate ordered containers. Child
// elements sharing a tag name are grouped under the entry of their first
// occurrence, in document order.
//
// Validation rejects, in order:
//   - input that does not start with an <svg> tag
//   - malformed markup (unclosed or mismatched tags, multiple roots)
//   - a missing or empty root element
//   - a root without child elements
//   - nested <svg>, <image> or <style> elements at any depth
package svg
