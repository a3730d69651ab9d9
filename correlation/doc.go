// Package correlation implements the correlation index (CI): a
// recursively partitioned, piecewise-linear learned index that predicts
// a host-key range for a guest-column query instead of materializing a
// dense secondary index.
//
// 🚀 What is a correlation index?
//
//	If a guest column is correlated with a host column that already has
//	an ordered index, the CI learns a piecewise function host ≈ f(guest)
//	plus a small per-region outlier table, and answers guest queries by
//	predicting a bounded host-key range for the host index to probe —
//	trading one dense index for a compact model plus a handful of
//	exceptions.
//
// ✨ Key properties:
//   - error-bounded: every node's model is validated against every
//     training point in its span before being accepted, with points that
//     fall outside ±epsilon demoted into the node's outlier table.
//   - total and read-only: Construct builds the index once from a sorted
//     snapshot; LookupPoint/LookupRange never fail, they return
//     increasingly empty results for out-of-range or disjoint queries.
//   - frozen after construction: an *Index returned by Construct is never
//     mutated again, so concurrent readers need no synchronization.
//
// The index is a flat arena of nodes (see node in types.go) addressed by
// integer index rather than a pointer tree, per the "prefer a slab/arena
// with child indices" design note this package is built against — there
// is no parent backreference and no heap-allocated node graph to leak or
// double-free.
//
// See ARCHITECTURE in build.go for the construction pipeline and
// lookup.go for the two query modes.
package correlation
