// Command corrbench runs the correlation-index benchmark harness against
// a synthetic or real dataset, reporting build time, query throughput,
// and memory usage for one access path and query type.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/katalvlaran/corrindex/bench"
	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/dataset"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
	"github.com/katalvlaran/corrindex/xlog"
)

var (
	errMissingDataPath    = errors.New("corrbench: -data is required for this -benchmark")
	errUnknownBenchmark   = errors.New("corrbench: unknown -benchmark")
	errUnknownPointerMode = errors.New("corrbench: unknown -index-pointer")
	errUnknownModelKind   = errors.New("corrbench: unknown -compute")
)

func main() {
	var (
		access           string
		indexPointer     string
		benchmark        string
		query            string
		selectivity      float64
		distribution     string
		outlierRatio     float64
		tupleCount       int
		queryCount       int
		fanout           int
		errorBound       uint64
		outlierThreshold float64
		minNodeSize      int
		maxHeight        int
		compute          string
		dataPath         string
		verbose          bool
		dumpPath         string
		loglevel         string
	)

	flag.StringVar(&access, "access", "correlation", "access path: primary|secondary|baseline|correlation")
	flag.StringVar(&indexPointer, "index-pointer", "physical", "tuple reference mode: physical|logical")
	flag.StringVar(&benchmark, "benchmark", "micro", "workload: micro|taxi|flight")
	flag.StringVar(&query, "query", "point", "query type: point|range")
	flag.Float64Var(&selectivity, "selectivity", 0.01, "range query width as a fraction of the queried column's domain")
	flag.StringVar(&distribution, "distribution", "linear", "micro-benchmark guest/host distribution: linear|sigmoid")
	flag.Float64Var(&outlierRatio, "outlier-ratio", 0.0, "micro-benchmark fraction of rows with an injected outlier host value")
	flag.IntVar(&tupleCount, "tuple-count", 100000, "number of rows to generate or load")
	flag.IntVar(&queryCount, "query-count", 1000, "number of queries to issue")
	flag.IntVar(&fanout, "fanout", 4, "correlation index fanout")
	flag.Uint64Var(&errorBound, "error-bound", 1, "correlation index target error bound")
	flag.Float64Var(&outlierThreshold, "outlier-threshold", 0.2, "correlation index outlier threshold")
	flag.IntVar(&minNodeSize, "min-node-size", 100, "correlation index minimum node size")
	flag.IntVar(&maxHeight, "max-height", 16, "correlation index maximum tree height")
	flag.StringVar(&compute, "compute", "interpolation", "correlation index model kind: interpolation|regression")
	flag.StringVar(&dataPath, "data", "", "path to the taxi/flight binary dataset (required unless -benchmark=micro)")
	flag.BoolVar(&verbose, "verbose", false, "dump the built correlation index tree to stderr")
	flag.StringVar(&dumpPath, "dump-path", "", "write the verbose correlation index dump to this file instead of stderr; a .gz suffix gzip-compresses it")
	flag.StringVar(&loglevel, "loglevel", "info", "log level: debug|info|warn|error")

	flag.Parse()

	xlog.SetLevel(xlog.ParseLevel(loglevel))

	if err := run(options{
		access: access, indexPointer: indexPointer, benchmark: benchmark, query: query,
		selectivity: selectivity, distribution: distribution, outlierRatio: outlierRatio,
		tupleCount: tupleCount, queryCount: queryCount, fanout: fanout, errorBound: errorBound,
		outlierThreshold: outlierThreshold, minNodeSize: minNodeSize, maxHeight: maxHeight,
		compute: compute, dataPath: dataPath, verbose: verbose, dumpPath: dumpPath,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "corrbench:", err)
		flag.Usage()
		os.Exit(1)
	}
}

type options struct {
	access, indexPointer, benchmark, query, distribution, compute, dataPath, dumpPath string
	selectivity, outlierRatio, outlierThreshold                                       float64
	tupleCount, queryCount, fanout, minNodeSize, maxHeight                            int
	errorBound                                                                        uint64
	verbose                                                                           bool
}

func run(o options) error {
	mode, err := parsePointerMode(o.indexPointer)
	if err != nil {
		return err
	}
	modelKind, err := parseModelKind(o.compute)
	if err != nil {
		return err
	}

	cfg := correlation.NewConfig(
		correlation.WithFanout(o.fanout),
		correlation.WithErrorBound(o.errorBound),
		correlation.WithOutlierThreshold(o.outlierThreshold),
		correlation.WithMinNodeSize(o.minNodeSize),
		correlation.WithMaxHeight(o.maxHeight),
		correlation.WithModelKind(modelKind),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}

	rs, sch, cols, err := loadDataset(o)
	if err != nil {
		return err
	}
	xlog.Infof("loaded %d rows for benchmark=%s", rs.Len(), o.benchmark)

	rng := rand.New(rand.NewSource(1))
	h, err := bench.NewHarness(rs, sch, cols, mode, cfg, rng)
	if err != nil {
		return err
	}
	if err := h.Build(); err != nil {
		return err
	}

	if o.verbose {
		if err := h.Correlation().Dump(os.Stderr, true, false); err != nil {
			return err
		}
	}
	if o.dumpPath != "" {
		if err := dumpToFile(h.Correlation(), o.dumpPath); err != nil {
			return err
		}
	}

	benchOpts := bench.NewOptions(
		bench.WithAccess(bench.Access(o.access)),
		bench.WithQuery(bench.QueryType(o.query)),
		bench.WithQueryCount(o.queryCount),
		bench.WithSelectivity(o.selectivity),
	)
	report, err := h.Run(benchOpts)
	if err != nil {
		return err
	}

	fmt.Println(report.String())
	return nil
}

// dumpToFile writes idx's verbose diagnostic tree to path, gzip-compressing
// the stream when path ends in ".gz" (the sink klauspost/compress/gzip is
// wired for).
func dumpToFile(idx *correlation.Index, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	gzipOutput := strings.HasSuffix(path, ".gz")
	if err := idx.Dump(f, true, gzipOutput); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadDataset(o options) (*rowstore.RowStore, *schema.Schema, dataset.Columns, error) {
	switch o.benchmark {
	case "micro":
		return dataset.GenerateMicro(o.tupleCount, o.distribution, o.outlierRatio, rand.New(rand.NewSource(2)))
	case "taxi":
		if o.dataPath == "" {
			return nil, nil, dataset.Columns{}, errMissingDataPath
		}
		f, err := os.Open(o.dataPath)
		if err != nil {
			return nil, nil, dataset.Columns{}, err
		}
		defer f.Close()
		return dataset.LoadTaxiRecords(f, o.tupleCount)
	case "flight":
		if o.dataPath == "" {
			return nil, nil, dataset.Columns{}, errMissingDataPath
		}
		f, err := os.Open(o.dataPath)
		if err != nil {
			return nil, nil, dataset.Columns{}, err
		}
		defer f.Close()
		return dataset.LoadFlightRecords(f, o.tupleCount)
	default:
		return nil, nil, dataset.Columns{}, errUnknownBenchmark
	}
}

func parsePointerMode(s string) (tupleref.PointerMode, error) {
	switch s {
	case "physical":
		return tupleref.Physical, nil
	case "logical":
		return tupleref.Logical, nil
	default:
		return 0, errUnknownPointerMode
	}
}

func parseModelKind(s string) (correlation.ModelKind, error) {
	switch s {
	case "interpolation":
		return correlation.Interpolation, nil
	case "regression":
		return correlation.Regression, nil
	default:
		return 0, errUnknownModelKind
	}
}
