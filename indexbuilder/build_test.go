package indexbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/corrindex/correlation"
	"github.com/katalvlaran/corrindex/rowstore"
	"github.com/katalvlaran/corrindex/schema"
	"github.com/katalvlaran/corrindex/tupleref"
)

// newFixtureStore builds a 4-column (primary, host, guest, measure) row
// store of n rows with host=guest=i and primary key = 1000+i, so tests can
// assert on predictable values.
func newFixtureStore(t *testing.T, n int) (*rowstore.RowStore, *schema.Schema, int, int, int) {
	t.Helper()
	sch := schema.New()
	primaryCol, _ := sch.AddAttr(8)
	hostCol, _ := sch.AddAttr(8)
	guestCol, _ := sch.AddAttr(8)
	measureCol, _ := sch.AddAttr(8)
	_ = measureCol

	rs := rowstore.New(sch.TupleWidth())
	for i := 0; i < n; i++ {
		buf := make([]byte, sch.TupleWidth())
		require.NoError(t, rowstore.PutAttr(buf, sch, primaryCol, uint64(1000+i)))
		require.NoError(t, rowstore.PutAttr(buf, sch, hostCol, uint64(i)))
		require.NoError(t, rowstore.PutAttr(buf, sch, guestCol, uint64(i)))
		require.NoError(t, rowstore.PutAttr(buf, sch, measureCol, uint64(i*2)))
		_, err := rs.Append(buf)
		require.NoError(t, err)
	}
	return rs, sch, primaryCol, hostCol, guestCol
}

func TestBuild_EmptyRowStoreFails(t *testing.T) {
	sch := schema.New()
	sch.AddAttr(8)
	sch.AddAttr(8)
	sch.AddAttr(8)
	rs := rowstore.New(sch.TupleWidth())

	_, err := Build(rs, sch, 0, 2, 1, tupleref.Physical, correlation.DefaultConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyRowStore)
}

func TestBuild_PhysicalModeSkipsPrimaryIndex(t *testing.T) {
	rs, sch, primaryCol, hostCol, guestCol := newFixtureStore(t, 200)
	cfg := correlation.DefaultConfig()
	cfg.MinNodeSize = 1000

	built, err := Build(rs, sch, primaryCol, guestCol, hostCol, tupleref.Physical, cfg)
	require.NoError(t, err)
	assert.Nil(t, built.Primary)
	assert.Equal(t, 200, built.Host.Len())
	assert.NotNil(t, built.Correlation)
}

func TestBuild_LogicalModePopulatesPrimaryIndex(t *testing.T) {
	rs, sch, primaryCol, hostCol, guestCol := newFixtureStore(t, 50)
	cfg := correlation.DefaultConfig()
	cfg.MinNodeSize = 1000

	built, err := Build(rs, sch, primaryCol, guestCol, hostCol, tupleref.Logical, cfg)
	require.NoError(t, err)
	require.NotNil(t, built.Primary)

	offsets := built.Primary.Lookup(1025)
	require.Len(t, offsets, 1)
	assert.Equal(t, uint64(25), offsets[0])
}

func TestBuild_HostIndexAgreesWithCorrelationIndex(t *testing.T) {
	rs, sch, primaryCol, hostCol, guestCol := newFixtureStore(t, 300)
	cfg := correlation.DefaultConfig()
	cfg.MinNodeSize = 1 // below the span, so the correlation index fits a model

	built, err := Build(rs, sch, primaryCol, guestCol, hostCol, tupleref.Physical, cfg)
	require.NoError(t, err)

	hr, ok, _ := built.Correlation.LookupPoint(150)
	require.True(t, ok)
	refs := built.Host.RangeLookup(hr.Lo, hr.Hi)
	assert.Contains(t, refs, tupleref.TupleRef(150))
}
