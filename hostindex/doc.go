// Package hostindex implements the host-key ordered index (HKI): the
// ordered multimap {host_value → tuple_ref} that the correlation index's
// predicted host ranges are probed against.
//
// A HKI entry's tuple_ref is either a primary key or a row offset
// depending on the PointerMode the surrounding index was built with;
// hostindex itself is agnostic to which — it stores and returns whatever
// tupleref.TupleRef values it is given.
package hostindex
