// Package membuf acquires the backing storage for a region's buffers.
package membuf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAcquire indicates the backing storage could not be obtained.
var ErrAcquire = errors.New("membuf: acquire failed")

// Kind selects where a buffer's bytes live.
type Kind uint8

const (
	// KindHeap allocates from the Go heap.
	KindHeap Kind = iota
	// KindMmap uses an anonymous private mapping outside the Go heap.
	// Platforms without mmap fall back to KindHeap.
	KindMmap
)

func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindMmap:
		return "mmap"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses a backing name. The empty string selects KindHeap.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "heap":
		return KindHeap, nil
	case "mmap":
		return KindMmap, nil
	default:
		return 0, fmt.Errorf("membuf: unknown backing %q", s)
	}
}

// Buffer is a zeroed, fixed-length byte slice with an explicit release.
type Buffer struct {
	data    []byte
	release func([]byte) error
}

// Acquire returns a zeroed buffer of n bytes.
func Acquire(n int, kind Kind) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAcquire, n)
	}
	if n == 0 || kind == KindHeap {
		return &Buffer{data: make([]byte, n)}, nil
	}
	data, release, err := mapAnon(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAcquire, n, err)
	}
	return &Buffer{data: data, release: release}, nil
}

// Bytes returns the buffer contents, or nil after Release.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer length, or 0 after Release.
func (b *Buffer) Len() int { return len(b.data) }

// Release returns the storage. Calling it again is a no-op.
func (b *Buffer) Release() error {
	if b == nil || b.data == nil {
		return nil
	}
	data := b.data
	b.data = nil
	if b.release == nil {
		return nil
	}
	return b.release(data)
}
