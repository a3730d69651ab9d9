package correlation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_AppliesOptionsInOrder(t *testing.T) {
	cfg := NewConfig(
		WithFanout(8),
		WithErrorBound(4),
		WithOutlierThreshold(0.1),
		WithMinNodeSize(16),
		WithMaxHeight(6),
		WithModelKind(Regression),
	)

	assert.Equal(t, 8, cfg.Fanout)
	assert.Equal(t, uint64(4), cfg.ErrorBound)
	assert.Equal(t, 0.1, cfg.OutlierThreshold)
	assert.Equal(t, 16, cfg.MinNodeSize)
	assert.Equal(t, 6, cfg.MaxHeight)
	assert.Equal(t, Regression, cfg.ModelKind)
}

func TestNewConfig_LaterOptionOverridesEarlier(t *testing.T) {
	cfg := NewConfig(WithFanout(4), WithFanout(10))
	assert.Equal(t, 10, cfg.Fanout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"fanout too small", func(c *Config) { c.Fanout = 1 }, ErrInvalidFanout},
		{"zero error bound", func(c *Config) { c.ErrorBound = 0 }, ErrInvalidErrorBound},
		{"outlier threshold zero", func(c *Config) { c.OutlierThreshold = 0 }, ErrInvalidOutlierThreshold},
		{"outlier threshold above one", func(c *Config) { c.OutlierThreshold = 1.5 }, ErrInvalidOutlierThreshold},
		{"min node size zero", func(c *Config) { c.MinNodeSize = 0 }, ErrInvalidMinNodeSize},
		{"max height zero", func(c *Config) { c.MaxHeight = 0 }, ErrInvalidMaxHeight},
		{"unknown model kind", func(c *Config) { c.ModelKind = ModelKind(99) }, ErrInvalidModelKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestModelKind_String(t *testing.T) {
	assert.Equal(t, "interpolation", Interpolation.String())
	assert.Equal(t, "regression", Regression.String())
	assert.Equal(t, "unknown", ModelKind(7).String())
}
