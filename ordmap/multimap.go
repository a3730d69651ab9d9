package ordmap

import "sort"

// Entry is a single (key, value) pair stored in a Multimap. Multiple
// entries may share the same Key; their relative order among equal keys
// is the order in which they were inserted (stable).
type Entry struct {
	Key uint64
	Val uint64
}

// Multimap is an ordered multimap over uint64 keys, sorted ascending by
// Key. Zero value is an empty, usable multimap.
type Multimap struct {
	entries []Entry
}

// New returns an empty Multimap.
func New() *Multimap {
	return &Multimap{}
}

// NewFromSorted builds a Multimap directly from entries already sorted
// ascending by Key, skipping the per-insert binary search. The caller
// retains ownership of the slice; NewFromSorted takes no copy, so callers
// must not mutate entries afterward.
//
// Complexity: O(1). Callers are responsible for the O(n log n) sort.
func NewFromSorted(entries []Entry) *Multimap {
	return &Multimap{entries: entries}
}

// Len reports the number of entries in the multimap.
func (m *Multimap) Len() int {
	return len(m.entries)
}

// Insert adds (key, val) to the multimap, maintaining sort order.
//
// Complexity: O(log n) to locate the insertion point, O(n) to shift
// trailing entries. Acceptable here because outlier buffers are built
// once per node over a bounded span and never on a hot query path.
func (m *Multimap) Insert(key, val uint64) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Key > key
	})
	m.entries = append(m.entries, Entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry{Key: key, Val: val}
}

// EqualRange returns the values of every entry whose Key equals key, in
// insertion order. Returns nil (not an error) if no entry matches.
//
// Complexity: O(log n + k) where k is the number of matches.
func (m *Multimap) EqualRange(key uint64) []uint64 {
	lo := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Key >= key
	})
	var out []uint64
	for i := lo; i < len(m.entries) && m.entries[i].Key == key; i++ {
		out = append(out, m.entries[i].Val)
	}
	return out
}

// RangeScan returns every entry whose Key lies in the inclusive range
// [lo, hi], in ascending key order. Returns nil if lo > hi or no entry
// falls in range.
//
// Complexity: O(log n + k) where k is the number of matches.
func (m *Multimap) RangeScan(lo, hi uint64) []Entry {
	if lo > hi {
		return nil
	}
	start := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Key >= lo
	})
	end := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Key > hi
	})
	if start >= end {
		return nil
	}
	out := make([]Entry, end-start)
	copy(out, m.entries[start:end])
	return out
}

// All returns every entry in ascending key order. The returned slice must
// not be mutated by the caller.
func (m *Multimap) All() []Entry {
	return m.entries
}
