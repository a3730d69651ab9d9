// Package bench is a reusable benchmark harness reproducing the shape of
// the original implementation's run_workload: build timer, query timer,
// memory-before/after via runtime.MemStats, and an ops/sec figure,
// returned as a Report rather than printed directly so cmd/corrbench can
// own presentation.
//
// Four access paths are compared, per spec.md §6's access enumeration:
//
//   - primary: point/range lookups against the primary index, counting
//     the matching row offsets — a reference baseline unrelated to the
//     guest predicate this module exists to accelerate.
//   - secondary: lookups against the host index by host value directly —
//     the classic fully-materialized index this module assumes already
//     exists for the host column.
//   - baseline: a fully-materialized index built directly over the guest
//     column, the "what if we just indexed the correlated column too"
//     comparison point the correlation index is meant to beat on memory,
//     not necessarily on latency.
//   - correlation: the full CI + host index + residual-filter path via
//     package executor.
package bench
