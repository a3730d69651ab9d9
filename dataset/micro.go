package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
)

// GenerateMicro builds a synthetic row store of tupleCount rows: guest is
// the row's sequential index, host is a function of guest shaped by
// distribution ("linear" maps host=guest directly; "sigmoid" follows the
// original micro-benchmark's 1/(1+e^-x)*1e7 curve scaled across the row
// range), primary is a random uint64 key, and measure is a random value in
// [0,100).
//
// outlierRatio, in [0,1], is the fraction of rows whose host value is
// instead replaced by an unrelated random value, injecting genuine
// outliers for the correlation index's validation/outlier-container path
// to exercise — the original generator has no equivalent knob; this
// supplements it per spec.md §6's distribution/outlier_ratio CLI flags.
//
// rng must be non-nil; callers pass a seeded *rand.Rand for reproducible
// datasets (this package does not seed one itself, since Go forbids
// wall-clock seeding in a context that must stay deterministic across
// runs).
func GenerateMicro(tupleCount int, distribution string, outlierRatio float64, rng *rand.Rand) (*rowstore.RowStore, *schema.Schema, Columns, error) {
	if distribution != "linear" && distribution != "sigmoid" {
		return nil, nil, Columns{}, fmt.Errorf("GenerateMicro: distribution=%q: %w", distribution, ErrInvalidDistribution)
	}
	if outlierRatio < 0 || outlierRatio > 1 {
		return nil, nil, Columns{}, fmt.Errorf("GenerateMicro: outlier_ratio=%v: %w", outlierRatio, ErrInvalidOutlierRatio)
	}

	sch, cols := NewWorkloadSchema()
	rs := rowstore.New(sch.TupleWidth())

	for tupleID := 0; tupleID < tupleCount; tupleID++ {
		host := hostForDistribution(distribution, tupleID, tupleCount)
		if outlierRatio > 0 && rng.Float64() < outlierRatio {
			host = rng.Uint64() % (uint64(tupleCount) * 10)
		}

		buf := make([]byte, sch.TupleWidth())
		if err := rowstore.PutAttr(buf, sch, cols.Primary, rng.Uint64()); err != nil {
			return nil, nil, Columns{}, err
		}
		if err := rowstore.PutAttr(buf, sch, cols.Host, host); err != nil {
			return nil, nil, Columns{}, err
		}
		if err := rowstore.PutAttr(buf, sch, cols.Guest, uint64(tupleID)); err != nil {
			return nil, nil, Columns{}, err
		}
		if err := rowstore.PutAttr(buf, sch, cols.Measure, rng.Uint64()%100); err != nil {
			return nil, nil, Columns{}, err
		}

		if _, err := rs.Append(buf); err != nil {
			return nil, nil, Columns{}, err
		}
	}

	return rs, sch, cols, nil
}

func hostForDistribution(distribution string, tupleID, tupleCount int) uint64 {
	if distribution == "linear" {
		return uint64(tupleID)
	}
	// sigmoid: matches the original micro_benchmark.h's
	// x = tuple_id/tuple_count*12 - 6; host = sigmoid(x) * 1e7.
	x := float64(tupleID)/float64(tupleCount)*12 - 6
	return uint64(sigmoid(x) * 1e7)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
