package bench

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/dataset"
	"github.com/katalvlaran/corrindex/executor"
	"github.com/katalvlaran/corrindex/indexbuilder"
	"github.com/katalvlaran/corrindex/ordmap"
	"github.com/katalvlaran/corrindex/primaryindex"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
)

// Harness drives one dataset through every access path spec.md §6
// enumerates, timing construction and querying the way the original
// run_workload does.
type Harness struct {
	rs   *rowstore.RowStore
	sch  *schema.Schema
	cols dataset.Columns
	mode tupleref.PointerMode
	cfg  correlation.Config
	rng  *rand.Rand

	built      *indexbuilder.Built
	primaryIdx *primaryindex.Index // primary_key -> row_offset, always populated
	baseline   *ordmap.Multimap    // guest -> tuple_ref, the "full index on guest" comparison
	exec       *executor.Executor

	primaryKeys []uint64
	hostValues  []uint64
	guestValues []uint64

	buildTimeMS float64
}

// NewHarness returns a Harness over rs, not yet built. rng drives every
// random query key this harness picks; pass a seeded *rand.Rand for
// reproducible runs.
func NewHarness(rs *rowstore.RowStore, sch *schema.Schema, cols dataset.Columns, mode tupleref.PointerMode, cfg correlation.Config, rng *rand.Rand) (*Harness, error) {
	if rs.Len() == 0 {
		return nil, fmt.Errorf("NewHarness: %w", ErrEmptyKeySpace)
	}
	return &Harness{rs: rs, sch: sch, cols: cols, mode: mode, cfg: cfg, rng: rng}, nil
}

// Build constructs every access path's structure once, recording the
// wall-clock time taken so every subsequent Run's Report carries the same
// BuildTimeMS. Run calls Build automatically if it has not been called
// yet.
func (h *Harness) Build() error {
	start := time.Now()

	built, err := indexbuilder.Build(h.rs, h.sch, h.cols.Primary, h.cols.Guest, h.cols.Host, h.mode, h.cfg)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	primaryIdx := primaryindex.New()
	baseline := ordmap.New()
	var primaryKeys, hostValues, guestValues []uint64

	for offset := uint64(0); offset < uint64(h.rs.Len()); offset++ {
		tuple, err := h.rs.Fetch(offset)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		pkey, err := rowstore.ReadAttr(tuple, h.sch, h.cols.Primary)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		guest, err := rowstore.ReadAttr(tuple, h.sch, h.cols.Guest)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}
		host, err := rowstore.ReadAttr(tuple, h.sch, h.cols.Host)
		if err != nil {
			return fmt.Errorf("Build: %w", err)
		}

		primaryIdx.Insert(pkey, offset)

		ref := offset
		if h.mode == tupleref.Logical {
			ref = pkey
		}
		baseline.Insert(guest, ref)

		primaryKeys = append(primaryKeys, pkey)
		hostValues = append(hostValues, host)
		guestValues = append(guestValues, guest)
	}

	h.built = built
	h.primaryIdx = primaryIdx
	h.baseline = baseline
	h.primaryKeys = primaryKeys
	h.hostValues = hostValues
	h.guestValues = guestValues
	h.exec = executor.New(h.rs, h.sch, h.cols.Guest, built.Host, built.Primary, built.Correlation, h.mode)

	h.buildTimeMS = msSince(start)
	return nil
}

// Correlation returns the built correlation index, or nil if Build has
// not run yet. Exposed for callers that want to dump its diagnostic tree
// (see correlation.(*Index).Dump) without reaching into Harness internals.
func (h *Harness) Correlation() *correlation.Index {
	if h.built == nil {
		return nil
	}
	return h.built.Correlation
}

// Run issues opts.QueryCount queries of opts.Query shape against
// opts.Access's structure and returns a Report. Build runs first if it
// has not already.
func (h *Harness) Run(opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if h.built == nil {
		if err := h.Build(); err != nil {
			return nil, err
		}
	}

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	var matched uint64
	for i := 0; i < opts.QueryCount; i++ {
		n, err := h.issueOne(opts)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		matched += n
	}
	elapsed := time.Since(start)

	runtime.ReadMemStats(&memAfter)

	return &Report{
		Access:      opts.Access,
		Query:       opts.Query,
		QueryCount:  opts.QueryCount,
		BuildTimeMS: h.buildTimeMS,
		QueryTimeMS: msSince(start),
		OpsPerSec:   float64(opts.QueryCount) / elapsed.Seconds(),
		MemBeforeMB: mbOf(memBefore),
		MemAfterMB:  mbOf(memAfter),
		RowsMatched: matched,
	}, nil
}

// issueOne issues a single random query per opts and returns how many
// rows it matched.
func (h *Harness) issueOne(opts Options) (uint64, error) {
	switch opts.Access {
	case AccessPrimary:
		return h.queryPrimary(opts)
	case AccessSecondary:
		return h.querySecondary(opts)
	case AccessBaseline:
		return h.queryBaseline(opts)
	case AccessCorrelation:
		return h.queryCorrelation(opts)
	default:
		return 0, fmt.Errorf("issueOne: %w", ErrInvalidAccess)
	}
}

func (h *Harness) queryPrimary(opts Options) (uint64, error) {
	if opts.Query == QueryRange {
		lo, hi := h.randomRange(h.primaryKeys, opts.Selectivity)
		return uint64(len(h.primaryIdx.RangeLookup(lo, hi))), nil
	}
	key := h.randomOf(h.primaryKeys)
	return uint64(len(h.primaryIdx.Lookup(key))), nil
}

func (h *Harness) querySecondary(opts Options) (uint64, error) {
	if opts.Query == QueryRange {
		lo, hi := h.randomRange(h.hostValues, opts.Selectivity)
		return uint64(len(h.built.Host.RangeLookup(lo, hi))), nil
	}
	key := h.randomOf(h.hostValues)
	return uint64(len(h.built.Host.Lookup(key))), nil
}

func (h *Harness) queryBaseline(opts Options) (uint64, error) {
	if opts.Query == QueryRange {
		lo, hi := h.randomRange(h.guestValues, opts.Selectivity)
		return uint64(len(h.baseline.RangeScan(lo, hi))), nil
	}
	key := h.randomOf(h.guestValues)
	return uint64(len(h.baseline.EqualRange(key))), nil
}

func (h *Harness) queryCorrelation(opts Options) (uint64, error) {
	if opts.Query == QueryRange {
		lo, hi := h.randomRange(h.guestValues, opts.Selectivity)
		rows, err := h.exec.LookupRange(lo, hi)
		if err != nil {
			return 0, err
		}
		return uint64(len(rows)), nil
	}
	key := h.randomOf(h.guestValues)
	rows, err := h.exec.LookupPoint(key)
	if err != nil {
		return 0, err
	}
	return uint64(len(rows)), nil
}

func (h *Harness) randomOf(values []uint64) uint64 {
	return values[h.rng.Intn(len(values))]
}

// randomRange picks a query window of width selectivity*(max-min) over
// values' domain, anchored at a random value from values and clamped to
// the domain's upper bound.
func (h *Harness) randomRange(values []uint64, selectivity float64) (lo, hi uint64) {
	min, max := domain(values)
	width := uint64(float64(max-min) * selectivity)
	lo = h.randomOf(values)
	hi = lo + width
	if hi > max {
		hi = max
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func domain(values []uint64) (min, max uint64) {
	min, max = values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func mbOf(m runtime.MemStats) float64 {
	return float64(m.HeapAlloc) / (1024 * 1024)
}
