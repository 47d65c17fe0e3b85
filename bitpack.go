// Package bitpack packs sequences of small bit-width fields into a single
// fixed-width unsigned integer and unpacks them back out, most significant
// field first. It operates purely on in-memory values: no byte streams, no
// error reporting, the caller is responsible for keeping the total field
// width within the backing word.
package bitpack

import "math/bits"

// Uint covers the native backing word types. 128-bit words have no native
// Go type and are handled separately by Writer128 and Reader128.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width of the backing word, in bits
func bitSize[T Uint]() uint8 {
	return uint8(bits.OnesCount64(uint64(^T(0))))
}

// nBitMask returns a word with only the low n bits set. There is no check
// for n exceeding the word width, callers have to keep it in range.
func nBitMask[T Uint](n uint8) T {
	return ^T(0) >> (bitSize[T]() - n)
}
