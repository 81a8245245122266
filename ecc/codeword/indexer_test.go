package codeword

import (
	"errors"
	"math"
	"testing"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLen(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 2},
		{7, 8},
		{4096, 4682},
	}
	for _, tt := range tests {
		got, err := CheckLen(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "CheckLen(%d)", tt.n)
	}

	_, err := CheckLen(math.MaxInt / 4)
	require.True(t, errors.Is(err, ErrOverflow))

	_, err = CheckLen(-1)
	require.True(t, errors.Is(err, ErrOverflow))
}

func TestGroups_FourBytesAtZero(t *testing.T) {
	got := Groups(0, 4, 4682)
	want := []Group{
		{Start: 0, Width: 4, Slot: 0},
		{Start: 7, Width: 4, Slot: 1},
		{Start: 14, Width: 4, Slot: 2},
		{Start: 21, Width: 4, Slot: 3},
		{Start: 28, Width: 4, Slot: 4},
	}
	require.Equal(t, want, got)
}

func TestGroups_ClippedTail(t *testing.T) {
	got := Groups(0, 1, 4682)
	want := []Group{
		{Start: 0, Width: 4, Slot: 0},
		{Start: 7, Width: 1, Slot: 1},
	}
	require.Equal(t, want, got)
}

func TestGroups_SlotFollowsAbsoluteOffset(t *testing.T) {
	got := Groups(4, 4, 4682)
	require.Len(t, got, 5)

	// Slot = (4*8 + i) / 7
	for k, g := range got {
		assert.Equal(t, k*Period, g.Start)
		assert.Equal(t, (32+g.Start)/Period, g.Slot)
	}
	assert.Equal(t, 4, got[0].Slot)
}

func TestGroups_AdjacentBlocksShareBoundarySlot(t *testing.T) {
	first := Groups(0, 4, 4682)
	second := Groups(4, 4, 4682)
	require.Equal(t, first[len(first)-1].Slot, second[0].Slot)
}

func TestWalk_StopsAtSlotLimit(t *testing.T) {
	got := Groups(0, 4, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[2].Slot)

	require.Empty(t, Groups(0, 4, 0))
}

func TestWalk_EarlyReturn(t *testing.T) {
	calls := 0
	Walk(0, 16, 100, func(Group) bool {
		calls++
		return calls < 2
	})
	require.Equal(t, 2, calls)
}

func TestWalk_EmptyRegion(t *testing.T) {
	require.Empty(t, Groups(10, 0, 100))
}

func TestExtract_LSBFirst(t *testing.T) {
	b := []byte{0x12, 0x34}
	// 0x12 = 0001 0010: bits 0..3 are 0,1,0,0.
	require.Equal(t, ecc.Bits{0, 1, 0, 0}, Extract(b, Group{Start: 0, Width: 4}))
	// Bits 7..10 span bytes: bit7 of 0x12 = 0, bits 0..2 of 0x34 (0011 0100) = 0,0,1.
	require.Equal(t, ecc.Bits{0, 0, 0, 1}, Extract(b, Group{Start: 7, Width: 4}))
	// Clipped group leaves missing positions zero.
	require.Equal(t, ecc.Bits{1, 0, 0, 0}, Extract(b, Group{Start: 4, Width: 1}))
}

func TestStore_WritesOnlyPresentBits(t *testing.T) {
	b := []byte{0x00, 0x00}
	Store(b, Group{Start: 6, Width: 3}, ecc.Bits{1, 1, 1, 1})
	require.Equal(t, []byte{0xC0, 0x01}, b)

	Store(b, Group{Start: 6, Width: 2}, ecc.Bits{0, 0, 0, 0})
	require.Equal(t, []byte{0x00, 0x01}, b)
}

func TestExtractStore_RoundTrip(t *testing.T) {
	src := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x42}
	dst := make([]byte, len(src))
	for _, g := range Groups(0, len(src), 100) {
		Store(dst, g, Extract(src, g))
	}
	// Only covered bits are copied: bits 4..6 of every 7-bit period stay zero.
	for i := range len(src) * 8 {
		want := (src[i/8] >> (i % 8)) & 1
		if i%Period >= GroupBits {
			want = 0
		}
		require.Equal(t, want, (dst[i/8]>>(i%8))&1, "bit %d", i)
	}
}
