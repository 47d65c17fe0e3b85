package bitpack

// Writer accumulates bit fields into a single backing word. The first write
// ends up in the most significant bits of the finished word. The zero value
// is an empty writer, ready to use.
type Writer[T Uint] struct {
	word T
}

func NewWriter[T Uint]() Writer[T] {
	return Writer[T]{}
}

// Write appends the low count bits of src to the word, discarding any higher
// bits of src. It returns the updated writer, so calls can be chained.
// Writing more bits in total than the word holds silently produces garbage,
// the caller keeps track of the layout.
func (w Writer[T]) Write(count uint8, src T) Writer[T] {
	w.word <<= count
	w.word |= src & nBitMask[T](count)
	return w
}

// Finish returns the accumulated backing word.
func (w Writer[T]) Finish() T {
	return w.word
}
