// Package executor answers guest-column predicates by composing the
// correlation index, host index, primary index, and row store, the way
// spec.md §4.4 describes the Query Executor.
//
// The correlation index's host-range prediction is a superset of the
// true answer: every row whose guest value satisfies the predicate is
// covered by some returned host range or appears directly in the
// correlation index's outlier set, but the converse need not hold (a
// predicted range can include rows whose guest value does not actually
// match). Executor closes that gap by fetching every candidate row and
// re-checking the guest column exactly before returning it, and
// de-duplicates row offsets that the outlier set and a host-range probe
// both produced.
package executor
