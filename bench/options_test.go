package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Validates(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"bad access", Options{Access: "bogus", Query: QueryPoint, QueryCount: 1}, ErrInvalidAccess},
		{"bad query", Options{Access: AccessPrimary, Query: "bogus", QueryCount: 1}, ErrInvalidQueryType},
		{"zero query count", Options{Access: AccessPrimary, Query: QueryPoint, QueryCount: 0}, ErrInvalidQueryCount},
		{"range with zero selectivity", Options{Access: AccessPrimary, Query: QueryRange, QueryCount: 1, Selectivity: 0}, ErrInvalidSelectivity},
		{"range with selectivity above one", Options{Access: AccessPrimary, Query: QueryRange, QueryCount: 1, Selectivity: 1.5}, ErrInvalidSelectivity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewOptions_AppliesEachOption(t *testing.T) {
	o := NewOptions(
		WithAccess(AccessBaseline),
		WithQuery(QueryRange),
		WithQueryCount(50),
		WithSelectivity(0.25),
	)
	assert.Equal(t, AccessBaseline, o.Access)
	assert.Equal(t, QueryRange, o.Query)
	assert.Equal(t, 50, o.QueryCount)
	assert.Equal(t, 0.25, o.Selectivity)
}
