package alloc

import "errors"

var (
	// ErrExhausted indicates that every block is allocated.
	ErrExhausted = errors.New("alloc: no free block")

	// ErrBadOffset indicates an offset outside the managed capacity.
	ErrBadOffset = errors.New("alloc: offset out of bounds")

	// ErrNotAllocated indicates a free of a block that is not in use.
	ErrNotAllocated = errors.New("alloc: block not allocated")

	// ErrBadGeometry indicates a capacity or block size that cannot be managed.
	ErrBadGeometry = errors.New("alloc: invalid capacity or block size")
)
