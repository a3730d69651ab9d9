package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/dataset"
	"github.com/katalvlaran/corrindex/tupleref"
)

func newTestHarness(t *testing.T, mode tupleref.PointerMode) *Harness {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	rs, sch, cols, err := dataset.GenerateMicro(500, "linear", 0, rng)
	require.NoError(t, err)

	cfg := correlation.DefaultConfig()
	cfg.MinNodeSize = 1000

	h, err := NewHarness(rs, sch, cols, mode, cfg, rng)
	require.NoError(t, err)
	require.NoError(t, h.Build())
	return h
}

func TestHarness_RunEachAccessPath(t *testing.T) {
	h := newTestHarness(t, tupleref.Physical)

	for _, access := range []Access{AccessPrimary, AccessSecondary, AccessBaseline, AccessCorrelation} {
		opts := NewOptions(WithAccess(access), WithQuery(QueryPoint), WithQueryCount(20))
		report, err := h.Run(opts)
		require.NoError(t, err, "access=%s", access)
		assert.Equal(t, access, report.Access)
		assert.Equal(t, 20, report.QueryCount)
		assert.GreaterOrEqual(t, report.BuildTimeMS, 0.0)
	}
}

func TestHarness_RunRangeQueries(t *testing.T) {
	h := newTestHarness(t, tupleref.Physical)

	for _, access := range []Access{AccessPrimary, AccessSecondary, AccessBaseline, AccessCorrelation} {
		opts := NewOptions(WithAccess(access), WithQuery(QueryRange), WithQueryCount(10), WithSelectivity(0.1))
		report, err := h.Run(opts)
		require.NoError(t, err, "access=%s", access)
		assert.Equal(t, QueryRange, report.Query)
	}
}

func TestHarness_LogicalModeResolvesThroughPrimaryIndex(t *testing.T) {
	h := newTestHarness(t, tupleref.Logical)

	opts := NewOptions(WithAccess(AccessCorrelation), WithQuery(QueryPoint), WithQueryCount(5))
	report, err := h.Run(opts)
	require.NoError(t, err)
	assert.Equal(t, 5, report.QueryCount)
}

func TestHarness_RunRejectsInvalidOptions(t *testing.T) {
	h := newTestHarness(t, tupleref.Physical)
	_, err := h.Run(Options{Access: "nonsense", Query: QueryPoint, QueryCount: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAccess)
}

func TestNewHarness_EmptyRowStoreFails(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rs, sch, cols, err := dataset.GenerateMicro(0, "linear", 0, rng)
	require.NoError(t, err)

	_, err = NewHarness(rs, sch, cols, tupleref.Physical, correlation.DefaultConfig(), rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyKeySpace)
}

func TestReport_String(t *testing.T) {
	r := Report{Access: AccessCorrelation, Query: QueryPoint, QueryCount: 10, OpsPerSec: 2000}
	assert.Contains(t, r.String(), "access=correlation")
	assert.Contains(t, r.String(), "ops=2.00K/s")
}
