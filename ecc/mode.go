package ecc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates a decoder name that ParseMode does not recognise.
var ErrUnknownMode = errors.New("ecc: unknown decode mode")

// Mode selects how syndromes are interpreted.
type Mode uint8

const (
	// ModeHamming uses the full Hamming(7,4) syndrome table.
	ModeHamming Mode = iota
	// ModeReference corrects syndromes 1..3 only.
	ModeReference
)

func (m Mode) String() string {
	switch m {
	case ModeHamming:
		return "hamming"
	case ModeReference:
		return "reference"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Decoder returns the decode function for m.
func (m Mode) Decoder() Decoder {
	if m == ModeReference {
		return DecodeAndCorrect
	}
	return DecodeHamming
}

// ParseMode parses a mode name. The empty string selects ModeHamming.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hamming":
		return ModeHamming, nil
	case "reference", "ref":
		return ModeReference, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
