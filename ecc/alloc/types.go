package alloc

// Allocator hands out fixed-size blocks by byte offset.
//
// Implementations:
//   - Bitmap: first-fit over a one-bit-per-block map
type Allocator interface {
	// Alloc reserves the lowest free block and returns its byte offset.
	// Returns ErrExhausted when no block is free.
	Alloc() (int, error)

	// Free releases the block containing off.
	Free(off int) error

	// BlockSize returns the allocation granularity in bytes.
	BlockSize() int
}

var _ Allocator = (*Bitmap)(nil)
