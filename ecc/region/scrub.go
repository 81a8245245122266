package region

import (
	"context"
	"fmt"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/codeword"
)

// ScrubReport summarises a Scrub pass.
type ScrubReport struct {
	Blocks         int
	Groups         int
	Corrected      int
	CodesRewritten int
	Uncorrectable  []Finding
}

// Scrub verifies every allocated block as a (blockOffset, BlockSize) window
// and writes corrections back into the data buffer. Damaged check codes are
// re-encoded from the data. Uncorrectable groups are left as they are and
// listed in the report.
//
// Scrub requires a block size that is a multiple of 7 bytes and returns
// ErrUnaligned otherwise. With shared boundary slots a block's last group
// may carry a code written for its neighbour, and repairing against it would
// corrupt stored data.
//
// The lock is taken per block, so other callers may interleave. The context
// is checked between blocks; on cancellation the partial report is returned
// with ctx.Err().
func (r *Region) Scrub(ctx context.Context) (ScrubReport, error) {
	var rep ScrubReport

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return rep, ErrClosed
	}
	if bs := r.blocks.BlockSize(); bs%codeword.Period != 0 {
		r.mu.Unlock()
		return rep, fmt.Errorf("%w: scrub with %d-byte blocks", ErrUnaligned, bs)
	}
	var offs []int
	r.blocks.Each(func(off int) bool {
		offs = append(offs, off)
		return true
	})
	r.mu.Unlock()

	for _, off := range offs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := r.scrubBlock(off, &rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (r *Region) scrubBlock(off int, rep *ScrubReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if !r.blocks.InUse(off) {
		return nil
	}

	size := r.blocks.BlockSize()
	window := r.data.Bytes()[off : off+size]
	codes := r.codes.Bytes()

	var block Report
	codeword.Walk(off, size, len(codes), func(g codeword.Group) bool {
		bits := codeword.Extract(window, g)
		res := ecc.Correct(r.decode, &bits, g.Width, ecc.Code(codes[g.Slot])&ecc.CodeMask)
		block.Groups++
		switch res.Status {
		case ecc.StatusCorrected:
			codeword.Store(window, g, bits)
		case ecc.StatusCheckBit:
			codes[g.Slot] = byte(ecc.Encode(bits))
		}
		r.record(&block, off, g, res)
		return true
	})

	rep.Blocks++
	rep.Groups += block.Groups
	rep.Corrected += len(block.Corrections)
	rep.CodesRewritten += len(block.CheckBitErrors)
	rep.Uncorrectable = append(rep.Uncorrectable, block.Uncorrectable...)

	r.obs.Observe(Event{Kind: KindScrubbed, Offset: off, Size: size})
	return nil
}
