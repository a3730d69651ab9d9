// Package dataset builds row stores for the three workloads spec.md §6
// enumerates: a synthetic micro-benchmark (linear or sigmoid guest/host
// correlation, with injectable outliers), and binary fixed-record taxi and
// flight datasets.
//
// Every workload shares the same four-column schema: primary key, host
// (the attribute already covered by the host index), guest (the attribute
// the correlation index predicts host from), and measure (an uninvolved
// payload column carried for realism, matching the original benchmark
// harness's schema shape).
package dataset
