package bench

import "errors"

// ErrInvalidAccess indicates Options.Access is not one of the four
// defined Access constants.
var ErrInvalidAccess = errors.New("bench: unknown access path")

// ErrInvalidQueryType indicates Options.Query is not Point or Range.
var ErrInvalidQueryType = errors.New("bench: unknown query type")

// ErrInvalidQueryCount indicates Options.QueryCount < 1.
var ErrInvalidQueryCount = errors.New("bench: query count must be at least 1")

// ErrInvalidSelectivity indicates Options.Selectivity is outside (0,1],
// meaningful only for range queries.
var ErrInvalidSelectivity = errors.New("bench: selectivity must be in (0,1]")

// ErrEmptyKeySpace indicates the harness was built over a row store with
// no rows, so no query can be issued.
var ErrEmptyKeySpace = errors.New("bench: empty key space")
