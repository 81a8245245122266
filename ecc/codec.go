package ecc

import "fmt"

// Bits is one group of four data bits, one bit per element.
// Only the least significant bit of each element is significant.
type Bits [4]byte

// Code is a 3-bit check code packed as p1<<2 | p2<<1 | p3.
type Code byte

// CodeMask selects the meaningful bits of a stored Code.
const CodeMask Code = 0x07

// Status classifies the outcome of decoding one group.
type Status uint8

const (
	// StatusClean means the syndrome was zero.
	StatusClean Status = iota
	// StatusCorrected means one data bit was flipped back.
	StatusCorrected
	// StatusCheckBit means the stored check code, not the data, was damaged.
	StatusCheckBit
	// StatusUncorrectable means an error was detected but no safe
	// correction exists.
	StatusUncorrectable
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusCorrected:
		return "corrected"
	case StatusCheckBit:
		return "check-bit"
	case StatusUncorrectable:
		return "uncorrectable"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// MarshalText encodes s as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result describes what a decoder found in one group.
type Result struct {
	Syndrome uint8
	// Position is the index in [0,3] of the corrected data bit, or -1.
	Position int
	Status   Status
}

// Decoder checks d against c and corrects it in place when it can.
type Decoder func(d *Bits, c Code) Result

func parities(d *Bits) (p1, p2, p3 byte) {
	b0 := Parity(d[0] & 0x01)
	b1 := Parity(d[1] & 0x01)
	b2 := Parity(d[2] & 0x01)
	b3 := Parity(d[3] & 0x01)
	p1 = b0 ^ b1 ^ b3
	p2 = b0 ^ b2 ^ b3
	p3 = b1 ^ b2 ^ b3
	return p1, p2, p3
}

// Encode computes the check code for a group.
func Encode(d Bits) Code {
	p1, p2, p3 := parities(&d)
	return Code(p1<<2 | p2<<1 | p3)
}

// Syndrome recomputes the parities of d and XORs them against c.
func Syndrome(d *Bits, c Code) uint8 {
	p1, p2, p3 := parities(d)
	p1 ^= byte(c>>2) & 0x01
	p2 ^= byte(c>>1) & 0x01
	p3 ^= byte(c) & 0x01
	return p1<<2 | p2<<1 | p3
}

// DecodeAndCorrect is the reference decoder. A syndrome in [1,3] flips
// d[syndrome-1]; anything above is reported as uncorrectable and d is left
// untouched.
func DecodeAndCorrect(d *Bits, c Code) Result {
	s := Syndrome(d, c)
	switch {
	case s == 0:
		return Result{Syndrome: s, Position: -1, Status: StatusClean}
	case s <= 3:
		pos := int(s) - 1
		d[pos] ^= 0x01
		return Result{Syndrome: s, Position: pos, Status: StatusCorrected}
	default:
		return Result{Syndrome: s, Position: -1, Status: StatusUncorrectable}
	}
}

// Correct runs dec on a group that carries only width significant bits.
// Bits at or beyond width must be zero. A correction aimed at an absent
// position cannot come from a single-bit fault and is reported as
// uncorrectable without modifying d.
func Correct(dec Decoder, d *Bits, width int, c Code) Result {
	scratch := *d
	res := dec(&scratch, c)
	if res.Status == StatusCorrected && res.Position >= width {
		return Result{Syndrome: res.Syndrome, Position: -1, Status: StatusUncorrectable}
	}
	*d = scratch
	return res
}
