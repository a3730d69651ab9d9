package executor

import "errors"

// ErrDanglingReference indicates a tuple_ref produced by the host index or
// correlation index's outlier set could not be resolved to a row offset
// (a primary key with no entry in the primary index), which indicates the
// indexes and row store have fallen out of sync.
var ErrDanglingReference = errors.New("executor: dangling tuple reference")
