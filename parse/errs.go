package parse

import "errors"

var (
	ErrUnclosedElements = errors.New("unclosed elements at end of document")
	ErrUnexpectedEndTag = errors.New("unexpected end tag")
	ErrMismatchedEndTag = errors.New("mismatched end tag")
	ErrTextOutside      = errors.New("text outside of element")
	ErrAttributeOutside = errors.New("attribute outside of element")
	ErrMultipleRoots    = errors.New("multiple root elements")
	ErrTokenType        = errors.New("unexpected token type")
	ErrNoRoot           = errors.New("no root element")
)
