// Package ecc implements the per-group error-correcting code that protects a
// region's data buffer.
//
// # Overview
//
// Data is consumed in groups of four single-bit values d0..d3. Each group has
// a 3-bit check code stored outside the data stream:
//
//	p1 = d0 ^ d1 ^ d3
//	p2 = d0 ^ d2 ^ d3
//	p3 = d1 ^ d2 ^ d3
//	code = p1<<2 | p2<<1 | p3
//
// On read the parities are recomputed and XORed against the stored code to
// obtain a syndrome in [0,7]. Zero means no detected error.
//
// # Decoders
//
// Two decoders interpret the syndrome:
//
//   - DecodeAndCorrect (ModeReference): syndromes 1..3 flip d[syndrome-1];
//     syndromes 4..7 are reported as detected but not correctable.
//   - DecodeHamming (ModeHamming, the default): the check equations are those
//     of a Hamming(7,4) code, so every non-zero syndrome identifies exactly one
//     of the seven codeword bits:
//
//     Syndrome  Bit
//     6         d0
//     5         d1
//     3         d2
//     7         d3
//     4, 2, 1   p1, p2, p3 (stored code damaged, data intact)
//
// Neither decoder ever flips a position outside [0,3].
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package ecc
