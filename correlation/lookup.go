package correlation

import "github.com/katalvlaran/corrindex/tupleref"

// LookupPoint answers a guest equality predicate (spec.md §4.2).
//
// It returns (hr, hasRange, outliers). When the index does not cover
// guest at all, it returns no range and nil outliers (never an error,
// per spec.md §4.6's total query contract). Otherwise hasRange is true
// only when the leaf reached has a validated model, and hr is meaningful
// only then; a terminal leaf yields hasRange=false with its matching
// outliers. outliers is always safe to use regardless of hasRange.
func (idx *Index) LookupPoint(guest uint64) (hr HostRange, hasRange bool, outliers []tupleref.TupleRef) {
	root := &idx.nodes[idx.root]
	if guest < root.guestLo || guest > root.guestHi {
		return HostRange{}, false, nil
	}

	n := root
	for !n.isLeaf() {
		n = &idx.nodes[childForGuest(n, guest)]
	}

	refs := refsFromOutliers(n.outliers.EqualRange(guest))

	if !n.modelValid {
		return HostRange{}, false, refs
	}

	pred := predict(n.slope, n.intercept, guest)
	lo, hi := clampedBound(pred, n.epsilon)
	return HostRange{Lo: lo, Hi: hi}, true, refs
}

// LookupRange answers a guest range predicate [guestLo, guestHi] (spec.md
// §4.3). guestLo must be < guestHi; callers issuing a degenerate
// single-value range should use LookupPoint instead.
//
// Returned host ranges may overlap or be adjacent; callers must treat
// them as a set to probe independently, not a single merged interval.
func (idx *Index) LookupRange(guestLo, guestHi uint64) (ranges []HostRange, outliers []tupleref.TupleRef) {
	root := &idx.nodes[idx.root]
	if guestHi < root.guestLo || guestLo > root.guestHi {
		return nil, nil
	}

	idx.rangeLookupNode(idx.root, guestLo, guestHi, &ranges, &outliers)
	return ranges, outliers
}

func (idx *Index) rangeLookupNode(arenaIdx int, guestLo, guestHi uint64, ranges *[]HostRange, outliers *[]tupleref.TupleRef) {
	n := &idx.nodes[arenaIdx]
	if guestHi < n.guestLo || guestLo > n.guestHi {
		return
	}

	clampedLo, clampedHi := guestLo, guestHi
	if clampedLo < n.guestLo {
		clampedLo = n.guestLo
	}
	if clampedHi > n.guestHi {
		clampedHi = n.guestHi
	}

	if n.isLeaf() {
		for _, e := range n.outliers.RangeScan(clampedLo, clampedHi) {
			*outliers = append(*outliers, tupleref.TupleRef(e.Val))
		}

		if n.modelValid {
			predLo := predict(n.slope, n.intercept, clampedLo)
			predHi := predict(n.slope, n.intercept, clampedHi)
			lowPred, highPred := predLo, predHi
			if highPred < lowPred {
				lowPred, highPred = highPred, lowPred
			}
			lo, _ := clampedBound(lowPred, n.epsilon)
			_, hi := clampedBound(highPred, n.epsilon)
			*ranges = append(*ranges, HostRange{Lo: lo, Hi: hi})
		}
		return
	}

	// Explicit intersection recursion: every child whose [childLo,
	// childHiExclusive) span intersects [clampedLo, clampedHi] is
	// visited, regardless of position — spec.md §9 flags a source
	// variant that only recurses rightward from the first match as
	// buggy; this checks each child independently instead.
	for i, childIdx := range n.children {
		childLo := n.guestLo
		if i > 0 {
			childLo = n.childrenSep[i-1]
		}
		if clampedHi < childLo {
			continue
		}
		if i < len(n.childrenSep) && clampedLo >= n.childrenSep[i] {
			continue
		}
		idx.rangeLookupNode(childIdx, clampedLo, clampedHi, ranges, outliers)
	}
}

// childForGuest returns the arena index of the unique child of n whose
// span covers guest, via linear scan over the (small, fanout-sized)
// separator list.
func childForGuest(n *node, guest uint64) int {
	for i, sep := range n.childrenSep {
		if guest < sep {
			return n.children[i]
		}
	}
	return n.children[len(n.children)-1]
}

func refsFromOutliers(vals []uint64) []tupleref.TupleRef {
	if vals == nil {
		return nil
	}
	out := make([]tupleref.TupleRef, len(vals))
	for i, v := range vals {
		out[i] = tupleref.TupleRef(v)
	}
	return out
}
