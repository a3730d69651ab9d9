package bench

import "fmt"

// Report is the outcome of one Harness.Run call, mirroring the figures
// the original run_workload printed directly: build time, query
// throughput, and memory before/after.
type Report struct {
	Access     Access
	Query      QueryType
	QueryCount int

	BuildTimeMS float64
	QueryTimeMS float64
	OpsPerSec   float64

	MemBeforeMB float64
	MemAfterMB  float64

	// RowsMatched sums the number of rows returned across every issued
	// query, the equivalent of the original's running "sum" checksum.
	RowsMatched uint64
}

// String renders the report in the original harness's terse log shape.
func (r Report) String() string {
	return fmt.Sprintf(
		"access=%s query=%s queries=%d build=%.2fms query=%.2fms ops=%.2fK/s mem=%.2f->%.2fMB matched=%d",
		r.Access, r.Query, r.QueryCount, r.BuildTimeMS, r.QueryTimeMS, r.OpsPerSec/1000, r.MemBeforeMB, r.MemAfterMB, r.RowsMatched,
	)
}
