package region

import "github.com/joshuapare/ecckit/ecc"

// Stats is a point-in-time view of a region.
type Stats struct {
	Capacity  int
	BlockSize int
	Blocks    int
	Used      int
	CheckLen  int
	Mode      ecc.Mode

	// Cumulative decode outcomes since construction.
	Corrected      uint64
	CheckBitErrors uint64
	Uncorrectable  uint64
}

// Stats returns the current geometry, occupancy and decode counters.
func (r *Region) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		Capacity:       r.capacity,
		BlockSize:      r.blocks.BlockSize(),
		Blocks:         r.blocks.Blocks(),
		Used:           r.blocks.Used(),
		CheckLen:       r.codes.Len(),
		Mode:           r.mode,
		Corrected:      r.corrected,
		CheckBitErrors: r.checkBit,
		Uncorrectable:  r.uncorrectable,
	}
}
