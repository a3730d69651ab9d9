package hostindex

import (
	"github.com/katalvlaran/corrindex/ordmap"
	"github.com/katalvlaran/corrindex/tupleref"
)

// Index is the ordered multimap {host_value → tuple_ref} backing the HKI.
type Index struct {
	m    *ordmap.Multimap
	mode tupleref.PointerMode
}

// New returns an empty Index whose entries are tuple references in the
// given PointerMode.
func New(mode tupleref.PointerMode) *Index {
	return &Index{m: ordmap.New(), mode: mode}
}

// Mode reports the PointerMode this Index's tuple references are stored in.
func (idx *Index) Mode() tupleref.PointerMode {
	return idx.mode
}

// Insert records that hostValue maps to ref.
func (idx *Index) Insert(hostValue uint64, ref tupleref.TupleRef) {
	idx.m.Insert(hostValue, uint64(ref))
}

// RangeLookup returns every tuple reference whose host value lies in the
// inclusive range [lo, hi], the core probe the query executor issues for
// each host range the correlation index predicts.
func (idx *Index) RangeLookup(lo, hi uint64) []tupleref.TupleRef {
	entries := idx.m.RangeScan(lo, hi)
	if entries == nil {
		return nil
	}
	out := make([]tupleref.TupleRef, len(entries))
	for i, e := range entries {
		out[i] = tupleref.TupleRef(e.Val)
	}
	return out
}

// Lookup returns every tuple reference recorded for exactly hostValue.
func (idx *Index) Lookup(hostValue uint64) []tupleref.TupleRef {
	vals := idx.m.EqualRange(hostValue)
	if vals == nil {
		return nil
	}
	out := make([]tupleref.TupleRef, len(vals))
	for i, v := range vals {
		out[i] = tupleref.TupleRef(v)
	}
	return out
}

// Len reports the number of (host_value, tuple_ref) pairs recorded.
func (idx *Index) Len() int {
	return idx.m.Len()
}
