// Package codeword maps byte regions of a data buffer onto check-code slots.
//
// A region starting at byte offset index and spanning size bytes is walked
// with a bit cursor i = 0, 7, 14, ... while i < size*8. At each step the
// group consists of bits i..i+3 of the region (clipped at size*8) and its
// check code lives in slot (index*8 + i) / 7 of the check-code buffer.
//
// Bits are numbered least-significant first within each byte:
//
//	bit i  →  buf[i/8] >> (i%8) & 1
//
// Only four of every seven bits are covered by a group. The mapping is a
// function of the region's start offset, so two regions whose bit ranges
// meet inside one 7-bit period share a slot at their boundary; reading a
// region back is only guaranteed to verify against the codes of the most
// recent write over the same start offset.
package codeword
