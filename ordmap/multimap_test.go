package ordmap_test

import (
	"testing"

	"github.com/katalvlaran/corrindex/ordmap"
	"github.com/stretchr/testify/require"
)

func TestMultimap_InsertAndEqualRange(t *testing.T) {
	t.Parallel()

	m := ordmap.New()
	m.Insert(5, 100)
	m.Insert(3, 200)
	m.Insert(5, 300)
	m.Insert(1, 400)

	require.Equal(t, 4, m.Len())
	require.Equal(t, []uint64{100, 300}, m.EqualRange(5))
	require.Equal(t, []uint64{200}, m.EqualRange(3))
	require.Nil(t, m.EqualRange(42))
}

func TestMultimap_RangeScan(t *testing.T) {
	t.Parallel()

	m := ordmap.New()
	for _, e := range []ordmap.Entry{{1, 10}, {5, 50}, {5, 51}, {9, 90}, {20, 200}} {
		m.Insert(e.Key, e.Val)
	}

	tests := []struct {
		name     string
		lo, hi   uint64
		wantKeys []uint64
	}{
		{"covers middle", 4, 10, []uint64{5, 5, 9}},
		{"exact bounds", 1, 20, []uint64{1, 5, 5, 9, 20}},
		{"empty range", 100, 200, nil},
		{"inverted range", 10, 5, nil},
		{"single key", 9, 9, []uint64{9}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := m.RangeScan(tc.lo, tc.hi)
			var gotKeys []uint64 // stays nil when RangeScan returns nil
			for _, e := range got {
				gotKeys = append(gotKeys, e.Key)
			}
			require.Equal(t, tc.wantKeys, gotKeys)
		})
	}
}

func TestMultimap_StableInsertOrder(t *testing.T) {
	t.Parallel()

	m := ordmap.New()
	m.Insert(7, 1)
	m.Insert(7, 2)
	m.Insert(7, 3)
	require.Equal(t, []uint64{1, 2, 3}, m.EqualRange(7))
}

func TestNewFromSorted(t *testing.T) {
	t.Parallel()

	entries := []ordmap.Entry{{1, 10}, {2, 20}, {2, 21}}
	m := ordmap.NewFromSorted(entries)
	require.Equal(t, 3, m.Len())
	require.Equal(t, []uint64{20, 21}, m.EqualRange(2))
}
