package bitpack

// Reader extracts bit fields from a backing word in the order they were
// written, starting at the most significant end.
type Reader[T Uint] struct {
	word T
	pos  uint8
}

func NewReader[T Uint](word T) Reader[T] {
	return Reader[T]{word: word}
}

// Reset rewinds the reader back to the start of the word.
func (r *Reader[T]) Reset() {
	r.pos = 0
}

// Pos returns the number of bits consumed so far.
func (r *Reader[T]) Pos() uint8 {
	return r.pos
}

// ReadNext extracts the next count bits and advances the reader past them.
// Reading more bits in total than the word holds silently produces garbage,
// same as overfilling a Writer.
func (r *Reader[T]) ReadNext(count uint8) T {
	shift := bitSize[T]() - count - r.pos
	field := (r.word >> shift) & nBitMask[T](count)
	r.pos += count
	return field
}
