package ecc

// Parity returns the XOR of all eight bits of x.
func Parity(x byte) byte {
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return x & 1
}
