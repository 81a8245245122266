package codeword

import (
	"errors"
	"fmt"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/internal/buf"
)

const (
	// Period is the bit stride between consecutive groups.
	Period = 7

	// GroupBits is the number of data bits a full group covers.
	GroupBits = 4
)

// ErrOverflow indicates a capacity whose bit count does not fit in an int.
var ErrOverflow = errors.New("codeword: size overflow")

// Group is one run of up to four data bits sharing a check code.
type Group struct {
	// Start is the first bit of the group relative to the region start.
	Start int
	// Width is the number of bits present, in [1,4].
	Width int
	// Slot is the index of the group's check code.
	Slot int
}

// CheckLen returns the number of check-code slots needed for a data buffer of
// n bytes: ceil(n*8/7).
func CheckLen(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", ErrOverflow, n)
	}
	nbits, ok := buf.MulOverflowSafe(n, 8)
	if !ok {
		return 0, fmt.Errorf("%w: %d bytes", ErrOverflow, n)
	}
	return buf.CeilDiv(nbits, Period), nil
}

// Walk calls fn for each group of the region [index, index+size) in order.
// Iteration ends silently at the first group whose slot is at or beyond
// slots, or when fn returns false. The caller is expected to have validated
// the region against the data buffer.
func Walk(index, size, slots int, fn func(Group) bool) {
	nbits := size * 8
	base := index * 8
	for i := 0; i < nbits; i += Period {
		slot := (base + i) / Period
		if slot >= slots {
			return
		}
		g := Group{Start: i, Width: min(GroupBits, nbits-i), Slot: slot}
		if !fn(g) {
			return
		}
	}
}

// Groups collects the groups Walk would visit.
func Groups(index, size, slots int) []Group {
	out := make([]Group, 0, buf.CeilDiv(size*8, Period))
	Walk(index, size, slots, func(g Group) bool {
		out = append(out, g)
		return true
	})
	return out
}

// Extract reads the bits of g from a region-relative buffer. Positions at or
// beyond g.Width are zero.
func Extract(b []byte, g Group) ecc.Bits {
	var bits ecc.Bits
	for j := range g.Width {
		pos := g.Start + j
		bits[j] = (b[pos/8] >> (pos % 8)) & 0x01
	}
	return bits
}

// Store writes the g.Width present bits back into a region-relative buffer.
func Store(b []byte, g Group, bits ecc.Bits) {
	for j := range g.Width {
		pos := g.Start + j
		mask := byte(0x01) << (pos % 8)
		b[pos/8] = (b[pos/8] &^ mask) | ((bits[j] & 0x01) << (pos % 8))
	}
}
