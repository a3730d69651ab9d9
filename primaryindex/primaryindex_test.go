package primaryindex_test

import (
	"testing"

	"github.com/katalvlaran/corrindex/primaryindex"
	"github.com/stretchr/testify/require"
)

func TestIndex_LookupAndRange(t *testing.T) {
	t.Parallel()

	idx := primaryindex.New()
	for i := uint64(0); i < 10; i++ {
		idx.Insert(i, i*100)
	}

	require.Equal(t, []uint64{300}, idx.Lookup(3))
	require.Nil(t, idx.Lookup(999))

	got := idx.RangeLookup(2, 4)
	require.Equal(t, []uint64{200, 300, 400}, got)

	require.Equal(t, 10, idx.Len())
}

func TestIndex_LookupBatch(t *testing.T) {
	t.Parallel()

	idx := primaryindex.New()
	idx.Insert(1, 10)
	idx.Insert(2, 20)
	idx.Insert(1, 11)

	got := idx.LookupBatch([]uint64{2, 1, 5})
	require.Equal(t, []uint64{20, 10, 11}, got)
}
