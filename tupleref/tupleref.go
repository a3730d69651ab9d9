package tupleref

// TupleRef names a row, either by primary key or by row offset depending
// on the PointerMode in effect. It carries no discriminant of its own;
// callers must track the PointerMode separately (as the correlation
// index and host index both do).
type TupleRef uint64

// PointerMode selects what a TupleRef means: a primary key requiring a
// further hop through the primary index (Logical), or a row offset
// usable directly against the row store (Physical).
type PointerMode int

const (
	// Logical means TupleRef values are primary keys. Resolving one to a
	// row offset requires a Primary Index point lookup.
	Logical PointerMode = iota
	// Physical means TupleRef values are row offsets, usable directly
	// against the row store with no further indirection.
	Physical
)

// String renders the PointerMode for diagnostics and error messages.
func (m PointerMode) String() string {
	switch m {
	case Logical:
		return "logical"
	case Physical:
		return "physical"
	default:
		return "unknown"
	}
}
