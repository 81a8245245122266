// Package region implements a fixed-capacity memory region whose contents are
// protected by per-group check codes and handed out by a block allocator.
//
// # Overview
//
// A Region owns three buffers for its whole lifetime:
//
//   - the data buffer (Capacity bytes)
//   - the check-code buffer (ceil(Capacity*8/7) slots, one 3-bit code each)
//   - the allocation bitmap (Capacity/BlockSize blocks)
//
// Write copies a payload into the data buffer and re-encodes every group the
// payload covers. Read copies bytes out, re-verifies each group against its
// stored code and repairs the returned copy; stored state is left as it was.
// Scrub walks allocated blocks and repairs the data buffer itself.
//
// # Usage
//
//	r, err := region.New(region.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	off, err := r.Allocate()
//	if err != nil {
//	    return err
//	}
//	if err := r.Write(off, []byte{0x12, 0x34, 0x56, 0x78}); err != nil {
//	    return err
//	}
//	data, report, err := r.Read(off, 4)
//
// # Block Size
//
// Check-code slots are derived from absolute bit offsets in 7-bit periods.
// When BlockSize is not a multiple of 7 bytes, the last group of one block
// and the first group of the next share a slot, and writing either block
// invalidates the other's boundary group. A block size that is a multiple
// of 7 keeps every block's codes independent. Scrub writes repairs back to
// stored data and therefore refuses unaligned block sizes with ErrUnaligned.
//
// # Observability
//
// Every allocation, deallocation, correction and detection is delivered to
// the configured Observer as an Event, and logged through Config.Logger.
//
// # Thread Safety
//
// A Region serialises all operations with one mutex that guards the three
// buffers as a unit. Observers run while the lock is held and must not call
// back into the region.
package region
