// Package buf holds overflow-safe offset arithmetic shared by the region and
// the codeword indexer.
package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrRange is returned by CheckRange for any rejected window.
var ErrRange = errors.New("buf: range out of bounds")

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b int) int {
	return a/b + min(a%b, 1)
}

// CheckRange validates that the window [off, off+n) lies inside a buffer of
// bufLen bytes. The returned error wraps ErrRange.
func CheckRange(bufLen, off, n int) error {
	if off < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrRange, off)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrRange, n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return fmt.Errorf("%w: overflow: offset=%d + size=%d", ErrRange, off, n)
	}
	if end > bufLen {
		return fmt.Errorf("%w: end=%d > len=%d", ErrRange, end, bufLen)
	}
	return nil
}
