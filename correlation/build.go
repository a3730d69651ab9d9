package correlation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/corrindex/ordmap"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
)

// RowSource yields (tuple, row_offset) pairs for Construct to materialize
// training triples from. Next returns ok=false once exhausted.
// Implementations need not support re-iteration; Construct calls Next
// exactly until it returns ok=false.
type RowSource interface {
	Next() (tuple []byte, rowOffset uint64, ok bool)
}

// ARCHITECTURE: Construct is the sole entry point into the build
// pipeline (spec.md §4.1):
//
//  1. materialize: drain src into a flat []TrainingTriple, resolving
//     tuple_ref as either the tuple's primary key (logical mode, read
//     from primaryCol) or its row offset (physical mode).
//  2. sort the triples by guest ascending, stable so ties break by
//     input order (an explicit total order, per spec.md §4.1's
//     determinism requirement).
//  3. breadth-first build: starting from a root spanning the whole
//     array, each node attempts to fit a model, validates it against its
//     span, and either finalizes as a leaf or splits into Config.Fanout
//     children enqueued for the next round.
//  4. the triples array is discarded (it becomes unreachable once
//     Construct returns) — per spec.md §5, transient build memory does
//     not outlive the build.
func Construct(src RowSource, sch *schema.Schema, primaryCol, guestCol, hostCol int, mode tupleref.PointerMode, cfg Config) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	triples, err := materialize(src, sch, primaryCol, guestCol, hostCol, mode)
	if err != nil {
		return nil, err
	}
	if len(triples) == 0 {
		return nil, fmt.Errorf("Construct: %w", ErrEmptyTrainingSet)
	}

	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].Guest < triples[j].Guest
	})

	idx := &Index{cfg: cfg}
	idx.build(triples)

	return idx, nil
}

// materialize drains src into training triples, reading the guest and
// host attributes via sch and resolving tuple_ref per mode.
func materialize(src RowSource, sch *schema.Schema, primaryCol, guestCol, hostCol int, mode tupleref.PointerMode) ([]TrainingTriple, error) {
	var triples []TrainingTriple

	for {
		tuple, rowOffset, ok := src.Next()
		if !ok {
			break
		}

		guest, err := rowstore.ReadAttr(tuple, sch, guestCol)
		if err != nil {
			return nil, fmt.Errorf("materialize: guest column: %w", err)
		}
		host, err := rowstore.ReadAttr(tuple, sch, hostCol)
		if err != nil {
			return nil, fmt.Errorf("materialize: host column: %w", err)
		}

		var ref uint64
		if mode == tupleref.Logical {
			pkey, err := rowstore.ReadAttr(tuple, sch, primaryCol)
			if err != nil {
				return nil, fmt.Errorf("materialize: primary key: %w", err)
			}
			ref = pkey
		} else {
			ref = rowOffset
		}

		triples = append(triples, TrainingTriple{Guest: guest, Host: host, TupleRef: ref})
	}

	return triples, nil
}

// buildQueueEntry is one pending node awaiting fit/validate/split,
// tracked by its arena index and the [begin,end] span it was allocated
// against (the array offsets are only meaningful during build, per
// spec.md §3, and are not retained on node once finalized).
type buildQueueEntry struct {
	arenaIdx   int
	begin, end int
}

// build runs the breadth-first state machine of spec.md §4.5 over
// triples, populating idx.nodes.
func (idx *Index) build(triples []TrainingTriple) {
	root := idx.allocNode(triples, 0, len(triples)-1, 0)
	idx.root = root

	queue := []buildQueueEntry{{arenaIdx: root, begin: 0, end: len(triples) - 1}}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		n := &idx.nodes[entry.arenaIdx]
		idx.nodeCount++
		if n.level > idx.maxLevel {
			idx.maxLevel = n.level
		}

		outcome := fitSpan(idx.cfg, triples, entry.begin, entry.end, n.level)
		if outcome.terminal {
			idx.finalizeTerminal(n, triples, entry.begin, entry.end)
			continue
		}

		n.slope, n.intercept, n.epsilon = outcome.slope, outcome.intercept, outcome.epsilon
		if idx.validate(n, triples, entry.begin, entry.end) {
			n.modelValid = true
			continue // leaf: model validated, children stay empty.
		}

		// Validation failed: clear outliers, split into fanout children.
		n.outliers = nil
		n.modelValid = false

		spanLength := entry.end - entry.begin + 1
		if spanLength < idx.cfg.Fanout {
			// Cannot partition the span into Fanout non-empty children;
			// degrade to terminal instead (resolves the ambiguity the
			// original split formula leaves open for spans shorter than
			// fanout — see DESIGN.md).
			idx.finalizeTerminal(n, triples, entry.begin, entry.end)
			continue
		}

		boundaries := splitBoundaries(triples, entry.begin, entry.end, idx.cfg.Fanout)
		if boundaryRunsOffEnd(boundaries, entry.end) {
			// A run of duplicate guest values reaching the span's tail
			// snapped every remaining boundary to end+1 (see DESIGN.md):
			// there's no way to carve Fanout non-empty children out of
			// this span, so degrade to terminal the same way the
			// spanLength < Fanout case above does.
			idx.finalizeTerminal(n, triples, entry.begin, entry.end)
			continue
		}

		children := make([]int, 0, idx.cfg.Fanout)
		sep := make([]uint64, 0, idx.cfg.Fanout-1)

		childBegin := entry.begin
		for i := 0; i < idx.cfg.Fanout; i++ {
			childEnd := entry.end
			if i < idx.cfg.Fanout-1 {
				childEnd = boundaries[i] - 1
			}

			childIdx := idx.allocNode(triples, childBegin, childEnd, n.level+1)
			children = append(children, childIdx)
			if i < idx.cfg.Fanout-1 {
				sep = append(sep, triples[boundaries[i]].Guest)
			}

			queue = append(queue, buildQueueEntry{arenaIdx: childIdx, begin: childBegin, end: childEnd})
			childBegin = childEnd + 1
		}

		n.children = children
		n.childrenSep = sep
	}
}

// allocNode appends a fresh node for span [begin,end] to the arena and
// returns its index. guestLo/guestHi/hostLo/hostHi are captured here
// since they only depend on the span's endpoints and are retained after
// build (per spec.md §3's node attributes), unlike offset_begin/offset_end.
func (idx *Index) allocNode(triples []TrainingTriple, begin, end, level int) int {
	idx.nodes = append(idx.nodes, node{
		level:   level,
		guestLo: triples[begin].Guest,
		guestHi: triples[end].Guest,
		hostLo:  triples[begin].Host,
		hostHi:  triples[end].Host,
		spanLen: end - begin + 1,
	})
	return len(idx.nodes) - 1
}

// finalizeTerminal marks n as a terminal (model-free) leaf and moves
// every training point in [begin,end] into its outlier container, per
// spec.md §4.1/§4.5's TERMINAL_OUTLIER state.
func (idx *Index) finalizeTerminal(n *node, triples []TrainingTriple, begin, end int) {
	n.modelValid = false
	n.outliers = ordmap.New()
	for i := begin; i <= end; i++ {
		n.outliers.Insert(triples[i].Guest, triples[i].TupleRef)
	}
}

// validate checks n's fitted model against every point in its span,
// recording misses in n.outliers, and reports whether the outlier count
// stayed within Config.OutlierThreshold (spec.md §4.1 Validate).
func (idx *Index) validate(n *node, triples []TrainingTriple, begin, end int) bool {
	outliers := ordmap.New()
	for i := begin; i <= end; i++ {
		t := triples[i]
		pred := predict(n.slope, n.intercept, t.Guest)
		if !isWithinBound(pred, n.epsilon, t.Host) {
			outliers.Insert(t.Guest, t.TupleRef)
		}
	}

	spanLength := end - begin + 1
	if float64(outliers.Len()) > float64(spanLength)*idx.cfg.OutlierThreshold {
		return false
	}

	n.outliers = outliers
	return true
}

// boundaryRunsOffEnd reports whether any computed boundary landed past
// end, which means a run of duplicate guest values left too little room
// to snap a later boundary forward onto a distinct value (build's caller
// must refuse to split in this case, since a boundary of end+1 would
// index triples[end+1] when building that child's separator).
func boundaryRunsOffEnd(boundaries []int, end int) bool {
	for _, b := range boundaries {
		if b > end {
			return true
		}
	}
	return false
}

// splitBoundaries divides [begin,end] into fanout equal-by-index slices,
// snapping each internal boundary forward past any run of equal guest
// values so separators remain strictly increasing and always land on
// the first training position of the next distinct guest value (spec.md
// invariant 2). See DESIGN.md for why this snap is necessary beyond the
// literal index-slicing procedure in spec.md §4.1.
func splitBoundaries(triples []TrainingTriple, begin, end, fanout int) []int {
	span := end - begin + 1
	childSpan := span / fanout
	if childSpan < 1 {
		childSpan = 1
	}

	boundaries := make([]int, 0, fanout-1)
	prev := begin
	for i := 1; i < fanout; i++ {
		cand := begin + childSpan*i
		if cand > end {
			cand = end + 1
		}
		for cand > begin && cand <= end && triples[cand].Guest == triples[cand-1].Guest {
			cand++
		}
		if cand <= prev {
			cand = prev + 1
		}
		if cand > end+1 {
			cand = end + 1
		}
		boundaries = append(boundaries, cand)
		prev = cand
	}

	return boundaries
}
