package region

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/alloc"
	"github.com/joshuapare/ecckit/ecc/codeword"
	"github.com/joshuapare/ecckit/internal/buf"
	"github.com/joshuapare/ecckit/internal/membuf"
)

// Region is an ECC-protected data buffer with a block allocator.
type Region struct {
	mu sync.Mutex

	data   *membuf.Buffer
	codes  *membuf.Buffer
	blocks *alloc.Bitmap

	capacity int
	mode     ecc.Mode
	decode   ecc.Decoder
	obs      Observer
	closed   bool

	// Cumulative decode outcomes across reads and scrubs.
	corrected     uint64
	checkBit      uint64
	uncorrectable uint64
}

// New acquires the region's buffers. It fails if cfg is invalid or the
// backing storage cannot be obtained; no partial region is returned.
func New(cfg Config) (*Region, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	checkLen, err := codeword.CheckLen(cfg.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	blocks, err := alloc.NewBitmap(cfg.Capacity, cfg.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	data, err := membuf.Acquire(cfg.Capacity, cfg.Backing)
	if err != nil {
		return nil, fmt.Errorf("region: data buffer: %w", err)
	}
	codes, err := membuf.Acquire(checkLen, cfg.Backing)
	if err != nil {
		_ = data.Release()
		return nil, fmt.Errorf("region: check-code buffer: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discard
	}
	if !cfg.Aligned() {
		logger.Debug("adjacent blocks share boundary check codes",
			"blockSize", cfg.BlockSize, "period", codeword.Period)
	}

	return &Region{
		data:     data,
		codes:    codes,
		blocks:   blocks,
		capacity: cfg.Capacity,
		mode:     cfg.Mode,
		decode:   cfg.Mode.Decoder(),
		obs:      Observers{LogObserver(logger), cfg.Observer},
	}, nil
}

// Close releases the buffers. Calling Close again is a no-op.
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	return errors.Join(r.data.Release(), r.codes.Release())
}

// Capacity returns the data buffer size in bytes.
func (r *Region) Capacity() int { return r.capacity }

// BlockSize returns the allocation unit in bytes.
func (r *Region) BlockSize() int { return r.blocks.BlockSize() }

// InUse reports whether the block containing off is allocated.
func (r *Region) InUse(off int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed && r.blocks.InUse(off)
}

// Allocate reserves the lowest free block and returns its byte offset.
// It returns alloc.ErrExhausted when every block is in use.
func (r *Region) Allocate() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, ErrClosed
	}
	off, err := r.blocks.Alloc()
	if err != nil {
		return 0, err
	}
	r.obs.Observe(Event{Kind: KindAllocated, Offset: off, Size: r.blocks.BlockSize()})
	return off, nil
}

// Deallocate releases the block containing off. Invalid and double frees
// return an error wrapping alloc.ErrBadOffset or alloc.ErrNotAllocated and
// change nothing.
func (r *Region) Deallocate(off int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if err := r.blocks.Free(off); err != nil {
		return err
	}
	r.obs.Observe(Event{Kind: KindDeallocated, Offset: off, Size: r.blocks.BlockSize()})
	return nil
}

// Write stores payload at off and re-encodes every group it covers. A
// payload that does not fit returns ErrOutOfRange and writes nothing.
func (r *Region) Write(off int, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if err := buf.CheckRange(r.capacity, off, len(payload)); err != nil {
		return fmt.Errorf("%w: write: %w", ErrOutOfRange, err)
	}

	copy(r.data.Bytes()[off:], payload)

	codes := r.codes.Bytes()
	codeword.Walk(off, len(payload), len(codes), func(g codeword.Group) bool {
		codes[g.Slot] = byte(ecc.Encode(codeword.Extract(payload, g)))
		return true
	})

	r.obs.Observe(Event{Kind: KindWrite, Offset: off, Size: len(payload), Data: payload})
	return nil
}

// Read returns a corrected copy of size bytes at off.
func (r *Region) Read(off, size int) ([]byte, Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, Report{}, ErrClosed
	}
	if err := buf.CheckRange(r.capacity, off, size); err != nil {
		return nil, Report{}, fmt.Errorf("%w: read: %w", ErrOutOfRange, err)
	}
	out := make([]byte, size)
	rep := r.readLocked(out, off)
	return out, rep, nil
}

// ReadInto fills dst with a corrected copy of len(dst) bytes at off. On
// error dst is left untouched.
func (r *Region) ReadInto(dst []byte, off int) (Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return Report{}, ErrClosed
	}
	if err := buf.CheckRange(r.capacity, off, len(dst)); err != nil {
		return Report{}, fmt.Errorf("%w: read: %w", ErrOutOfRange, err)
	}
	return r.readLocked(dst, off), nil
}

// readLocked copies the window into dst and repairs dst, never the data
// buffer.
func (r *Region) readLocked(dst []byte, off int) Report {
	copy(dst, r.data.Bytes()[off:off+len(dst)])

	var rep Report
	codes := r.codes.Bytes()
	codeword.Walk(off, len(dst), len(codes), func(g codeword.Group) bool {
		bits := codeword.Extract(dst, g)
		res := ecc.Correct(r.decode, &bits, g.Width, ecc.Code(codes[g.Slot])&ecc.CodeMask)
		rep.Groups++
		if res.Status == ecc.StatusCorrected {
			codeword.Store(dst, g, bits)
		}
		r.record(&rep, off, g, res)
		return true
	})

	r.obs.Observe(Event{Kind: KindRead, Offset: off, Size: len(dst), Data: dst})
	return rep
}

// record files a non-clean result in rep, bumps counters and emits the event.
func (r *Region) record(rep *Report, off int, g codeword.Group, res ecc.Result) {
	if res.Status == ecc.StatusClean {
		return
	}
	f := newFinding(off, g, res)
	ev := Event{Offset: f.BitPosition / 8, BitPosition: f.BitPosition, Slot: g.Slot, Syndrome: res.Syndrome}

	switch res.Status {
	case ecc.StatusCorrected:
		rep.Corrections = append(rep.Corrections, f)
		r.corrected++
		ev.Kind = KindCorrected
	case ecc.StatusCheckBit:
		rep.CheckBitErrors = append(rep.CheckBitErrors, f)
		r.checkBit++
		ev.Kind = KindCheckBit
	default:
		rep.Uncorrectable = append(rep.Uncorrectable, f)
		r.uncorrectable++
		ev.Kind = KindUncorrectable
	}
	r.obs.Observe(ev)
}

// InjectFault XORs mask into the stored data byte at off, bypassing the
// check codes. It models a memory fault for drivers and tests.
func (r *Region) InjectFault(off int, mask byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if err := buf.CheckRange(r.capacity, off, 1); err != nil {
		return fmt.Errorf("%w: fault: %w", ErrOutOfRange, err)
	}
	r.data.Bytes()[off] ^= mask
	r.obs.Observe(Event{Kind: KindFault, Offset: off, Size: 1, Slot: -1, Mask: mask})
	return nil
}

// InjectCodeFault XORs mask into check-code slot.
func (r *Region) InjectCodeFault(slot int, mask byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if err := buf.CheckRange(r.codes.Len(), slot, 1); err != nil {
		return fmt.Errorf("%w: code fault: %w", ErrOutOfRange, err)
	}
	r.codes.Bytes()[slot] ^= mask & byte(ecc.CodeMask)
	r.obs.Observe(Event{Kind: KindFault, Offset: -1, Slot: slot, Mask: mask})
	return nil
}
