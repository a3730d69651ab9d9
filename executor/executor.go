package executor

import (
	"fmt"

	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/hostindex"
	"github.com/katalvlaran/corrindex/primaryindex"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
)

// Executor composes the built indexes and row store to answer guest
// predicates. The zero value is not usable; build one with New.
type Executor struct {
	rs   *rowstore.RowStore
	sch  *schema.Schema
	host *hostindex.Index
	pri  *primaryindex.Index // nil when Mode is Physical
	ci   *correlation.Index
	mode tupleref.PointerMode

	guestCol int
}

// New returns an Executor composing rs/sch with the given indexes.
// pri may be nil when mode is tupleref.Physical; it must be non-nil when
// mode is tupleref.Logical, matching how indexbuilder.Build populates
// indexbuilder.Built.
func New(rs *rowstore.RowStore, sch *schema.Schema, guestCol int, host *hostindex.Index, pri *primaryindex.Index, ci *correlation.Index, mode tupleref.PointerMode) *Executor {
	return &Executor{rs: rs, sch: sch, guestCol: guestCol, host: host, pri: pri, ci: ci, mode: mode}
}

// Row is a matched tuple together with the row offset it was fetched
// from, for callers that need to re-fetch or correlate results.
type Row struct {
	Offset uint64
	Tuple  []byte
}

// LookupPoint returns every row whose guest column exactly equals guest,
// resolved and residual-filtered per the superset property: candidates
// come from the correlation index's predicted host range (probed against
// the host index) plus its outlier set directly, de-duplicated by row
// offset, then each candidate's actual guest value is re-checked against
// the row store before being included.
func (e *Executor) LookupPoint(guest uint64) ([]Row, error) {
	hr, hasRange, outlierRefs := e.ci.LookupPoint(guest)

	var refs []tupleref.TupleRef
	refs = append(refs, outlierRefs...)
	if hasRange {
		refs = append(refs, e.host.RangeLookup(hr.Lo, hr.Hi)...)
	}

	return e.resolveAndFilter(refs, guest, guest)
}

// LookupRange returns every row whose guest column lies in the inclusive
// range [guestLo, guestHi], with the same residual-filtering and
// de-duplication contract as LookupPoint.
func (e *Executor) LookupRange(guestLo, guestHi uint64) ([]Row, error) {
	hostRanges, outlierRefs := e.ci.LookupRange(guestLo, guestHi)

	var refs []tupleref.TupleRef
	refs = append(refs, outlierRefs...)
	for _, hr := range hostRanges {
		refs = append(refs, e.host.RangeLookup(hr.Lo, hr.Hi)...)
	}

	return e.resolveAndFilter(refs, guestLo, guestHi)
}

// resolveAndFilter resolves each tuple_ref in refs to a row offset,
// de-duplicates offsets, fetches each row once, and keeps only rows whose
// guest column lies in [guestLo, guestHi] — the residual verification
// pass that collapses the correlation index's superset into the exact
// answer.
func (e *Executor) resolveAndFilter(refs []tupleref.TupleRef, guestLo, guestHi uint64) ([]Row, error) {
	seen := make(map[uint64]bool, len(refs))
	var out []Row

	for _, ref := range refs {
		offset, err := e.resolveOffset(ref)
		if err != nil {
			return nil, err
		}
		if seen[offset] {
			continue
		}
		seen[offset] = true

		tuple, err := e.rs.Fetch(offset)
		if err != nil {
			return nil, fmt.Errorf("resolveAndFilter: fetch offset %d: %w", offset, err)
		}

		guest, err := rowstore.ReadAttr(tuple, e.sch, e.guestCol)
		if err != nil {
			return nil, fmt.Errorf("resolveAndFilter: guest column at offset %d: %w", offset, err)
		}
		if guest < guestLo || guest > guestHi {
			continue // correlation index's superset includes a false positive.
		}

		out = append(out, Row{Offset: offset, Tuple: tuple})
	}

	return out, nil
}

// resolveOffset turns a tuple_ref into a row offset per e.mode: direct in
// Physical mode, a primary-index hop in Logical mode.
func (e *Executor) resolveOffset(ref tupleref.TupleRef) (uint64, error) {
	if e.mode == tupleref.Physical {
		return uint64(ref), nil
	}

	offsets := e.pri.Lookup(uint64(ref))
	if len(offsets) == 0 {
		return 0, fmt.Errorf("resolveOffset(%d): %w", ref, ErrDanglingReference)
	}
	return offsets[0], nil
}
