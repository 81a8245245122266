package eccmem

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshuapare/ecckit/ecc/alloc"
	"github.com/joshuapare/ecckit/ecc/region"
)

var (
	// ErrTooLarge indicates a payload larger than one block.
	ErrTooLarge = errors.New("eccmem: payload larger than block")

	// ErrNotOwned indicates access to a block that is not allocated.
	ErrNotOwned = errors.New("eccmem: block not allocated")
)

// Memory stores payloads in single blocks of a region.
type Memory struct {
	r *region.Region
}

// Open builds a region from cfg. The block size must be a multiple of 7
// bytes; otherwise a Put into one block can invalidate the codes of its
// neighbour and Open fails with region.ErrUnaligned.
func Open(cfg region.Config) (*Memory, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	r, err := region.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Memory{r: r}, nil
}

// validate applies region validation plus the facade's alignment rule.
func validate(cfg region.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Aligned() {
		return fmt.Errorf("%w: %w: block size %d", region.ErrInvalidConfig, region.ErrUnaligned, cfg.BlockSize)
	}
	return nil
}

// Region exposes the underlying region for fault injection and stats.
func (m *Memory) Region() *region.Region { return m.r }

// Put allocates a block, writes payload at its start and returns the offset.
func (m *Memory) Put(payload []byte) (int, error) {
	if len(payload) > m.r.BlockSize() {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(payload), m.r.BlockSize())
	}
	off, err := m.r.Allocate()
	if err != nil {
		return 0, err
	}
	if err := m.r.Write(off, payload); err != nil {
		_ = m.r.Deallocate(off)
		return 0, err
	}
	return off, nil
}

// Get reads size bytes from the allocated block at off.
func (m *Memory) Get(off, size int) ([]byte, region.Report, error) {
	if !m.r.InUse(off) {
		return nil, region.Report{}, fmt.Errorf("%w: %d", ErrNotOwned, off)
	}
	if off%m.r.BlockSize()+size > m.r.BlockSize() {
		return nil, region.Report{}, fmt.Errorf("%w: read of %d bytes at %d crosses block", region.ErrOutOfRange, size, off)
	}
	return m.r.Read(off, size)
}

// Release frees the block at off.
func (m *Memory) Release(off int) error {
	if err := m.r.Deallocate(off); err != nil {
		if errors.Is(err, alloc.ErrNotAllocated) {
			return fmt.Errorf("%w: %w", ErrNotOwned, err)
		}
		return err
	}
	return nil
}

// Scrub repairs every allocated block in place.
func (m *Memory) Scrub(ctx context.Context) (region.ScrubReport, error) {
	return m.r.Scrub(ctx)
}

// Stats returns the region's stats.
func (m *Memory) Stats() region.Stats { return m.r.Stats() }

// Close releases the region.
func (m *Memory) Close() error { return m.r.Close() }
