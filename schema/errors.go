package schema

import "errors"

// ErrUnknownColumn indicates a column id outside [0, AttrCount()) was
// requested from a Schema.
var ErrUnknownColumn = errors.New("schema: unknown column id")

// ErrZeroWidth indicates AddAttr was called with a width of zero.
var ErrZeroWidth = errors.New("schema: attribute width must be positive")
