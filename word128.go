package bitpack

import "lukechampine.com/uint128"

// Go has no native 128-bit integer, so the 128-bit backing word runs on
// uint128.Uint128 instead of the Uint type set. Same layout and the same
// unchecked contract as Writer and Reader.

// Writer128 accumulates bit fields into a 128-bit backing word, first write
// in the most significant bits. The zero value is an empty writer.
type Writer128 struct {
	word uint128.Uint128
}

func NewWriter128() Writer128 {
	return Writer128{}
}

// Write appends the low count bits of src to the word, discarding any higher
// bits of src. Chainable, like Writer.Write.
func (w Writer128) Write(count uint8, src uint128.Uint128) Writer128 {
	w.word = w.word.Lsh(uint(count)).Or(src.And(nBitMask128(count)))
	return w
}

// Write64 appends the low count bits of a plain uint64, saving the caller a
// From64 conversion for fields of 64 bits or fewer.
func (w Writer128) Write64(count uint8, src uint64) Writer128 {
	return w.Write(count, uint128.From64(src))
}

// Finish returns the accumulated backing word.
func (w Writer128) Finish() uint128.Uint128 {
	return w.word
}

// Reader128 extracts bit fields from a 128-bit backing word in the order
// they were written.
type Reader128 struct {
	word uint128.Uint128
	pos  uint8
}

func NewReader128(word uint128.Uint128) Reader128 {
	return Reader128{word: word}
}

// Reset rewinds the reader back to the start of the word.
func (r *Reader128) Reset() {
	r.pos = 0
}

// Pos returns the number of bits consumed so far.
func (r *Reader128) Pos() uint8 {
	return r.pos
}

// ReadNext extracts the next count bits and advances the reader past them.
func (r *Reader128) ReadNext(count uint8) uint128.Uint128 {
	shift := 128 - count - r.pos
	field := r.word.Rsh(uint(shift)).And(nBitMask128(count))
	r.pos += count
	return field
}

// ReadNext64 reads the next count bits as a plain uint64. Only meaningful
// for counts of 64 bits or fewer.
func (r *Reader128) ReadNext64(count uint8) uint64 {
	return r.ReadNext(count).Lo
}

func nBitMask128(n uint8) uint128.Uint128 {
	return uint128.Max.Rsh(uint(128 - n))
}
