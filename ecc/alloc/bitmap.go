package alloc

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// Bitmap tracks block allocation with one bit per block.
type Bitmap struct {
	words     []uint64
	blocks    int
	blockSize int
	used      int

	// lowFree is a word index below which every word is full.
	lowFree int
}

// NewBitmap creates an allocator for capacity bytes split into blocks of
// blockSize bytes. blockSize must evenly divide capacity.
func NewBitmap(capacity, blockSize int) (*Bitmap, error) {
	if capacity <= 0 || blockSize <= 0 {
		return nil, fmt.Errorf("%w: capacity=%d blockSize=%d", ErrBadGeometry, capacity, blockSize)
	}
	if capacity%blockSize != 0 {
		return nil, fmt.Errorf("%w: block size %d does not divide capacity %d",
			ErrBadGeometry, blockSize, capacity)
	}
	blocks := capacity / blockSize
	return &Bitmap{
		words:     make([]uint64, (blocks+wordBits-1)/wordBits),
		blocks:    blocks,
		blockSize: blockSize,
	}, nil
}

// Alloc marks the first free block in index order as used and returns its
// byte offset.
func (b *Bitmap) Alloc() (int, error) {
	for w := b.lowFree; w < len(b.words); w++ {
		word := b.words[w]
		if word == ^uint64(0) {
			continue
		}
		idx := w*wordBits + bits.TrailingZeros64(^word)
		if idx >= b.blocks {
			break
		}
		b.words[w] |= 1 << (idx % wordBits)
		b.used++
		b.lowFree = w
		return idx * b.blockSize, nil
	}
	b.lowFree = len(b.words)
	return 0, ErrExhausted
}

// Free releases the block that contains off.
func (b *Bitmap) Free(off int) error {
	if off < 0 || off >= b.blocks*b.blockSize {
		return fmt.Errorf("%w: %d", ErrBadOffset, off)
	}
	idx := off / b.blockSize
	w, mask := idx/wordBits, uint64(1)<<(idx%wordBits)
	if b.words[w]&mask == 0 {
		return fmt.Errorf("%w: block at %d", ErrNotAllocated, idx*b.blockSize)
	}
	b.words[w] &^= mask
	b.used--
	if w < b.lowFree {
		b.lowFree = w
	}
	return nil
}

// InUse reports whether the block containing off is allocated.
func (b *Bitmap) InUse(off int) bool {
	if off < 0 || off >= b.blocks*b.blockSize {
		return false
	}
	idx := off / b.blockSize
	return b.words[idx/wordBits]&(1<<(idx%wordBits)) != 0
}

// Each calls fn with the byte offset of every allocated block in ascending
// order until fn returns false.
func (b *Bitmap) Each(fn func(off int) bool) {
	for w, word := range b.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			word &^= 1 << bit
			if !fn((w*wordBits + bit) * b.blockSize) {
				return
			}
		}
	}
}

// Reset frees every block.
func (b *Bitmap) Reset() {
	clear(b.words)
	b.used = 0
	b.lowFree = 0
}

func (b *Bitmap) BlockSize() int { return b.blockSize }

func (b *Bitmap) Blocks() int { return b.blocks }

func (b *Bitmap) Used() int { return b.used }

// Available returns the number of free blocks.
func (b *Bitmap) Available() int { return b.blocks - b.used }
