// Package alloc provides fixed-size block allocation for an ECC-protected
// region.
//
// # Overview
//
// The region's data buffer is divided into Blocks() equal blocks of
// BlockSize() bytes. A bitmap holds one bit per block; a set bit means the
// block belongs to exactly one live caller.
//
// # Allocator Interface
//
//   - Alloc(): return the byte offset of the lowest free block and mark it used
//   - Free(off): release the block containing off
//
// There is no coalescing, no variable-size allocation and no fragmentation
// handling. Blocks are strictly fixed-size slots.
//
// # Usage Example
//
//	bm, err := alloc.NewBitmap(4096, 4)
//	if err != nil {
//	    return err
//	}
//
//	off, err := bm.Alloc()
//	if errors.Is(err, alloc.ErrExhausted) {
//	    // every block is in use
//	}
//
//	// Any offset inside the block releases it.
//	err = bm.Free(off + 2)
//
// # Free Semantics
//
// Free accepts any offset inside an allocated block and releases that block.
// Offsets outside [0, capacity) return ErrBadOffset; offsets inside a free
// block return ErrNotAllocated. A failed Free never changes the bitmap.
//
// # Thread Safety
//
// Bitmap instances are not thread-safe. The region serialises access with its
// own lock.
package alloc
