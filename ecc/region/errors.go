package region

import "errors"

var (
	// ErrOutOfRange indicates an offset or size outside the data buffer.
	ErrOutOfRange = errors.New("region: out of range")

	// ErrClosed indicates an operation on a region after Close.
	ErrClosed = errors.New("region: closed")

	// ErrInvalidConfig indicates a configuration rejected by Validate.
	ErrInvalidConfig = errors.New("region: invalid config")

	// ErrUnaligned indicates a block size that is not a multiple of 7 bytes,
	// so neighbouring blocks share a check-code slot.
	ErrUnaligned = errors.New("region: block size not a multiple of 7 bytes")
)
