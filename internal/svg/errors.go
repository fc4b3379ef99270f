package svg

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by ParseError through errors.Is.
var (
	ErrMissingRoot         = errors.New("missing root")
	ErrSyntax              = errors.New("malformed markup")
	ErrNoRootElement       = errors.New("no root element")
	ErrNoChildElements     = errors.New("no child elements")
	ErrUnsupportedElement  = errors.New("unsupported element")
	errUnknownParseFailure = errors.New("parse failure")
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	KindMissingRoot ErrorKind = iota
	KindSyntax
	KindNoRootElement
	KindNoChildElements
	KindUnsupportedElement
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMissingRoot:
		return ErrMissingRoot
	case KindSyntax:
		return ErrSyntax
	case KindNoRootElement:
		return ErrNoRootElement
	case KindNoChildElements:
		return ErrNoChildElements
	case KindUnsupportedElement:
		return ErrUnsupportedElement
	default:
		return errUnknownParseFailure
	}
}

// ParseError reports why a document could not be turned into a valid tree.
type ParseError struct {
	Kind ErrorKind
	// Msg is the human-readable reason without the common prefix.
	Msg string
	// Line is set for syntax errors when the position is known.
	Line int
	// Reserved names the offending element kind for KindUnsupportedElement.
	Reserved ReservedKind
}

func (e *ParseError) Error() string {
	if e.Kind == KindSyntax && e.Line > 0 {
		return fmt.Sprintf("Invalid SVG: %s at line %d", e.Msg, e.Line)
	}

	return "Invalid SVG: " + e.Msg
}

// Is lets errors.Is match the sentinel for the error kind.
func (e *ParseError) Is(target error) bool {
	return e.Kind.sentinel() == target
}

func syntaxError(line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...), Line: line}
}
