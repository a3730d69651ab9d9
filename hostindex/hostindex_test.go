package hostindex_test

import (
	"testing"

	"github.com/katalvlaran/corrindex/hostindex"
	"github.com/katalvlaran/corrindex/tupleref"
	"github.com/stretchr/testify/require"
)

func TestIndex_RangeLookup(t *testing.T) {
	t.Parallel()

	idx := hostindex.New(tupleref.Physical)
	for i := uint64(0); i < 20; i += 2 {
		idx.Insert(i, tupleref.TupleRef(i/2))
	}

	got := idx.RangeLookup(4, 10)
	require.Equal(t, []tupleref.TupleRef{2, 3, 4, 5}, got)
	require.Equal(t, tupleref.Physical, idx.Mode())
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	idx := hostindex.New(tupleref.Logical)
	idx.Insert(5, tupleref.TupleRef(100))
	idx.Insert(5, tupleref.TupleRef(101))

	got := idx.Lookup(5)
	require.Equal(t, []tupleref.TupleRef{100, 101}, got)
	require.Nil(t, idx.Lookup(999))
}
