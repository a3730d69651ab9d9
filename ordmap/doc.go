// Package ordmap provides a compact ordered multimap over uint64 keys,
// backed by a single sorted slice searched with binary search rather than
// a pointer-based tree.
//
// This is the one ordered-multimap primitive shared by every external
// collaborator in this module: the host index (HKI), the primary index,
// and the correlation index's per-node outlier container. A sorted slice
// is the design note's explicitly sanctioned alternative to a classical
// B-tree multimap ("a sorted vector of (guest, ref) with binary search is
// an equivalent and more compact representation") — it supports both the
// equal-range probe a point query needs and the ordered range scan a
// range query needs, with no pointer chasing and no per-entry allocation.
//
// Multimap is not safe for concurrent use; callers needing concurrent
// reads after construction should treat a built Multimap as immutable and
// share it across goroutines without further synchronization (no mutation
// follows construction, so no data race is possible).
package ordmap
