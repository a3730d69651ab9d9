// Package indexbuilder is the bulk construction driver: given a populated
// row store and schema, it builds the primary index, the host index, and
// the correlation index in one call, wiring the three collaborators that
// executor.Executor later composes at query time.
//
// Building the three structures here, rather than leaving callers to
// coordinate row-store scans themselves, keeps a single invariant in one
// place: the host index and correlation index must agree on PointerMode,
// and the primary index only needs populating at all when that mode is
// tupleref.Logical.
package indexbuilder
