package region

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/codeword"
	"github.com/joshuapare/ecckit/internal/membuf"
)

const (
	// DefaultCapacity is the data buffer size used by DefaultConfig.
	DefaultCapacity = 4096

	// DefaultBlockSize is the allocation granularity used by DefaultConfig.
	DefaultBlockSize = 4
)

// Config fixes a region's geometry and behaviour at construction.
type Config struct {
	// Capacity is the data buffer size in bytes.
	Capacity int

	// BlockSize is the allocation unit in bytes. It must divide Capacity.
	BlockSize int

	// Mode selects the syndrome decoder. The zero value is ecc.ModeHamming.
	Mode ecc.Mode

	// Backing selects heap or mmap storage for the data and check buffers.
	Backing membuf.Kind

	// Logger receives structured events. Nil discards them.
	Logger *slog.Logger

	// Observer receives every event after it is logged. May be nil.
	Observer Observer
}

// DefaultConfig returns a 4096-byte region with 4-byte blocks.
func DefaultConfig() Config {
	return Config{
		Capacity:  DefaultCapacity,
		BlockSize: DefaultBlockSize,
		Mode:      ecc.ModeHamming,
		Backing:   membuf.KindHeap,
	}
}

// Aligned reports whether every block owns its check-code slots, which holds
// when BlockSize is a multiple of 7 bytes.
func (c Config) Aligned() bool {
	return c.BlockSize > 0 && c.BlockSize%codeword.Period == 0
}

// Validate checks the geometry and enum fields.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidConfig, c.BlockSize)
	}
	if c.Capacity%c.BlockSize != 0 {
		return fmt.Errorf("%w: block size %d does not divide capacity %d",
			ErrInvalidConfig, c.BlockSize, c.Capacity)
	}
	if _, err := codeword.CheckLen(c.Capacity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Mode != ecc.ModeHamming && c.Mode != ecc.ModeReference {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidConfig, c.Mode)
	}
	if c.Backing != membuf.KindHeap && c.Backing != membuf.KindMmap {
		return fmt.Errorf("%w: unknown backing %v", ErrInvalidConfig, c.Backing)
	}
	return nil
}
