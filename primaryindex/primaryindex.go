package primaryindex

import "github.com/katalvlaran/corrindex/ordmap"

// Index is the ordered multimap {primary_key → row_offset}. Primary keys
// are conventionally unique, but Index places no such constraint on
// callers; duplicate keys simply yield multiple offsets from Lookup.
type Index struct {
	m *ordmap.Multimap
}

// New returns an empty Index.
func New() *Index {
	return &Index{m: ordmap.New()}
}

// Insert records that primaryKey maps to rowOffset.
func (idx *Index) Insert(primaryKey, rowOffset uint64) {
	idx.m.Insert(primaryKey, rowOffset)
}

// Lookup returns every row offset recorded for primaryKey, or nil if none.
func (idx *Index) Lookup(primaryKey uint64) []uint64 {
	return idx.m.EqualRange(primaryKey)
}

// LookupBatch resolves each key in keys independently, concatenating the
// results. Order between keys is preserved; order within a single key's
// matches follows insertion order.
func (idx *Index) LookupBatch(keys []uint64) []uint64 {
	var out []uint64
	for _, k := range keys {
		out = append(out, idx.Lookup(k)...)
	}
	return out
}

// RangeLookup returns every row offset whose primary key lies in the
// inclusive range [lo, hi].
func (idx *Index) RangeLookup(lo, hi uint64) []uint64 {
	entries := idx.m.RangeScan(lo, hi)
	if entries == nil {
		return nil
	}
	out := make([]uint64, len(entries))
	for i, e := range entries {
		out[i] = e.Val
	}
	return out
}

// Len reports the number of (key, offset) pairs recorded.
func (idx *Index) Len() int {
	return idx.m.Len()
}
