package rowstore

import "errors"

// ErrWrongWidth indicates a tuple passed to Append does not match the
// store's configured tuple width.
var ErrWrongWidth = errors.New("rowstore: tuple width mismatch")

// ErrOffsetOutOfRange indicates Fetch was called with an offset beyond
// the store's current size.
var ErrOffsetOutOfRange = errors.New("rowstore: offset out of range")
