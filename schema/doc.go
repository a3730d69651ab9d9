// Package schema describes the fixed-width column layout of a row store
// tuple: each attribute's byte width and its offset within the tuple.
//
// This mirrors the original IndexZoo TupleSchema (attr_widths_/attr_offsets_
// arrays built incrementally via add_attr), re-expressed as a Go slice-backed
// type with bounds-checked accessors instead of a fixed-size C array and
// silent zero-on-out-of-range behavior.
package schema
