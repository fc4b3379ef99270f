package svg

//go:generate go tool stringer -type=ReservedKind -linecomment -output=reserved_string.go

// ReservedKind identifies an element that may not appear anywhere below the root.
type ReservedKind int

const (
	_ ReservedKind = iota // zero value means "not reserved"

	ReservedNestedRoot  // nested root
	ReservedRasterImage // raster image
	ReservedStylesheet  // inline stylesheet
)

// reservedTags lists the disallowed child names in the order they are checked.
var reservedTags = []struct {
	tag     string
	kind    ReservedKind
	message string
}{
	{RootTag, ReservedNestedRoot, "Nested SVG elements are not supported"},
	{"image", ReservedRasterImage, "Raster image elements are not supported"},
	{"style", ReservedStylesheet, "Inline style elements are not supported"},
}

// lookupReserved returns the reserved kind and message for a child name.
func lookupReserved(name string) (ReservedKind, string, bool) {
	for _, r := range reservedTags {
		if r.tag == name {
			return r.kind, r.message, true
		}
	}

	return 0, "", false
}
