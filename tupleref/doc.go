// Package tupleref defines the vocabulary shared by the host index, the
// primary index, and the correlation index for naming a row without
// committing to how it is named.
//
// A TupleRef is either a primary key (logical pointer mode — one extra
// hop through the primary index at query time) or a row offset (physical
// pointer mode — resolved directly against the row store). Which one a
// given TupleRef holds is determined entirely by the PointerMode the
// index was built with; TupleRef itself carries no tag.
package tupleref
