package region

import (
	"testing"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/internal/membuf"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Capacity = 0 }},
		{"negative capacity", func(c *Config) { c.Capacity = -4096 }},
		{"zero block", func(c *Config) { c.BlockSize = 0 }},
		{"block does not divide", func(c *Config) { c.BlockSize = 5 }},
		{"capacity overflows bit count", func(c *Config) {
			c.Capacity = int(^uint(0)>>1) / 4
			c.BlockSize = 1
		}},
		{"unknown mode", func(c *Config) { c.Mode = ecc.Mode(7) }},
		{"unknown backing", func(c *Config) { c.Backing = membuf.Kind(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_Aligned(t *testing.T) {
	cfg := DefaultConfig()
	require.False(t, cfg.Aligned(), "4-byte blocks share boundary slots")

	for _, bs := range []int{7, 14, 28, 56} {
		cfg.BlockSize = bs
		require.True(t, cfg.Aligned(), "block size %d", bs)
	}
	cfg.BlockSize = 0
	require.False(t, cfg.Aligned())
}
