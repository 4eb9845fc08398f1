package utf8

// Iterator walks a byte slice by code point, forward or backward, tracking
// a byte offset rather than a code-point index.
type Iterator struct {
	data   []byte
	offset int
}

// Next decodes the code point starting at the iterator's current offset and
// advances past it. ok is false once the iterator reaches the end.
func (it *Iterator) Next() (cp CodePoint, ok bool) {
	if it.offset >= len(it.data) {
		return InvalidCodePoint, false
	}
	cp, n := Decode(it.data[it.offset:])
	it.offset += n
	return cp, true
}

// Prev moves the iterator back to the start of the previous code point by
// skipping continuation bytes, then decodes and returns it. ok is false once
// the iterator reaches the start.
func (it *Iterator) Prev() (cp CodePoint, ok bool) {
	if it.offset <= 0 {
		return InvalidCodePoint, false
	}
	i := it.offset - 1
	for i > 0 && isContinuation(it.data[i]) {
		i--
	}
	it.offset = i
	cp, _ = Decode(it.data[i:])
	return cp, true
}

// Offset returns the iterator's current byte offset.
func (it *Iterator) Offset() int { return it.offset }
