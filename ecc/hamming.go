package ecc

// hammingTable maps a syndrome to the data bit it identifies. Entries of -1
// point at one of the check bits p1, p2, p3.
var hammingTable = [8]int{
	0: -1,
	1: -1, // p3
	2: -1, // p2
	3: 2,  // d2
	4: -1, // p1
	5: 1,  // d1
	6: 0,  // d0
	7: 3,  // d3
}

// DecodeHamming decodes a group as a Hamming(7,4) codeword whose check bits
// live in c. Every single-bit error, in data or in the code, is identified.
func DecodeHamming(d *Bits, c Code) Result {
	s := Syndrome(d, c)
	if s == 0 {
		return Result{Syndrome: s, Position: -1, Status: StatusClean}
	}
	pos := hammingTable[s]
	if pos < 0 {
		return Result{Syndrome: s, Position: -1, Status: StatusCheckBit}
	}
	d[pos] ^= 0x01
	return Result{Syndrome: s, Position: pos, Status: StatusCorrected}
}

// SyndromeFor returns the syndrome produced by flipping data bit pos of an
// otherwise intact group.
func SyndromeFor(pos int) uint8 {
	var d Bits
	c := Encode(d)
	d[pos] = 1
	return Syndrome(&d, c)
}
