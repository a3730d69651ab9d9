package correlation

import "github.com/katalvlaran/corrindex/ordmap"

// TrainingTriple is one (guest, host, tuple_ref) row extracted from the
// row store for the duration of a build. Triples exist only while
// Construct runs; the array holding them is discarded once the tree is
// built (see build.go).
type TrainingTriple struct {
	Guest    uint64
	Host     uint64
	TupleRef uint64
}

// HostRange is an inclusive [Lo, Hi] interval over host values, returned
// by LookupPoint/LookupRange for the caller to probe against the host
// index.
type HostRange struct {
	Lo, Hi uint64
}

// node is one region [spanBegin, spanEnd] of the training array, stored
// in Index's flat arena. Children are referenced by arena index rather
// than by pointer — see the package doc's note on slab/arena allocation.
//
// node is only ever touched during Construct; once built, an Index's
// nodes are read-only.
type node struct {
	level int

	guestLo, guestHi uint64
	hostLo, hostHi   uint64 // only meaningful when modelValid
	spanLen          int    // training points covered at build time; retained only for diagnostics

	slope, intercept float64
	modelValid       bool
	epsilon          uint64

	outliers *ordmap.Multimap

	// children holds exactly Config.Fanout arena indices when this node
	// is not a leaf, or is empty when it is.
	children []int
	// childrenSep[i] is the guest-value separator between children[i]
	// and children[i+1]; len(childrenSep) == len(children)-1.
	childrenSep []uint64
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}

func (n *node) spanLength() int {
	return n.spanLen
}

// Index is a built, immutable correlation index. The zero value is not
// usable; obtain an *Index via Construct.
type Index struct {
	nodes     []node
	root      int
	nodeCount int
	maxLevel  int
	cfg       Config
}

// Config returns the configuration this index was built with.
func (idx *Index) Config() Config {
	return idx.cfg
}

// NodeCount reports the number of nodes in the built tree.
func (idx *Index) NodeCount() int {
	return idx.nodeCount
}

// MaxLevel reports the deepest level reached by any node in the built tree.
func (idx *Index) MaxLevel() int {
	return idx.maxLevel
}
