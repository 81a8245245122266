package ecc

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParity_KnownValues(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{0x00, 0},
		{0x01, 1},
		{0x03, 0},
		{0x12, 0},
		{0x13, 1},
		{0x7F, 1},
		{0xFF, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Parity(tt.in), "Parity(0x%02X)", tt.in)
	}
}

func TestParity_MatchesPopCount(t *testing.T) {
	for x := range 256 {
		want := byte(bits.OnesCount8(uint8(x)) & 1)
		require.Equal(t, want, Parity(byte(x)), "Parity(0x%02X)", x)
	}
}
