// Package rowstore implements the append-only fixed-width tuple store
// that backs the correlation index's base table.
//
// RowStore never locks: the concurrency model for this whole module is
// single-threaded cooperative (see the correlation package's top-level
// doc), so RowStore trades the teacher pack's usual sync.RWMutex
// convention (see katalvlaran-lvlath/core) for straight-line append/fetch,
// matching the original GenericDataTable's single-writer-then-many-readers
// lifecycle: build once, query many times.
package rowstore
