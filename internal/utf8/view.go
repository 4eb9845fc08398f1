package utf8

import "bytes"

// View borrows a byte slice as UTF-8 text and caches its code-point count.
// A View must not outlive the storage it borrows from.
type View struct {
	data   []byte
	length int
}

// NewView wraps data as a View, computing and caching its code-point count.
// If data contains any malformed byte sequence the cached length is 0,
// matching the original codec's "invalid anywhere invalidates the whole
// count" behaviour.
func NewView(data []byte) View {
	return View{data: data, length: countCodePoints(data)}
}

func countCodePoints(data []byte) int {
	count := 0
	for i := 0; i < len(data); {
		cp, n := Decode(data[i:])
		if !cp.Valid() {
			return 0
		}
		count++
		i += n
	}
	return count
}

// Len returns the code-point length.
func (v View) Len() int { return v.length }

// ByteLen returns the byte length.
func (v View) ByteLen() int { return len(v.data) }

// Bytes returns the borrowed byte slice.
func (v View) Bytes() []byte { return v.data }

func byteOffsetOf(data []byte, codePointOffset int) int {
	offset := 0
	for i := 0; i < codePointOffset && offset < len(data); i++ {
		_, n := Decode(data[offset:])
		offset += n
	}
	return offset
}

// At returns the code point at code-point offset i, or ok=false if i is out
// of range.
func (v View) At(i int) (cp CodePoint, ok bool) {
	if i < 0 || i >= v.length {
		return InvalidCodePoint, false
	}
	cp, _ = Decode(v.data[byteOffsetOf(v.data, i):])
	return cp, true
}

// Substr returns the count code points starting at offset, clamping offset
// to the string's length and count to what remains after offset.
func (v View) Substr(offset, count int) View {
	if offset < 0 {
		offset = 0
	}
	if offset > v.length {
		offset = v.length
	}
	if remaining := v.length - offset; count > remaining {
		count = remaining
	}
	if count < 0 {
		count = 0
	}
	begin := byteOffsetOf(v.data, offset)
	end := begin + byteOffsetOf(v.data[begin:], count)
	return View{data: v.data[begin:end], length: count}
}

// BeginsWith reports whether v starts with prefix, bytewise.
func (v View) BeginsWith(prefix View) bool { return bytes.HasPrefix(v.data, prefix.data) }

// StartsWith is an alias for BeginsWith.
func (v View) StartsWith(prefix View) bool { return v.BeginsWith(prefix) }

// EndsWith reports whether v ends with suffix, bytewise.
func (v View) EndsWith(suffix View) bool { return bytes.HasSuffix(v.data, suffix.data) }

// Equal reports length-plus-bytewise equality.
func (v View) Equal(other View) bool {
	return v.length == other.length && bytes.Equal(v.data, other.data)
}

// Compare orders v against other by (length, then bytewise). This is
// explicitly not Unicode collation.
func (v View) Compare(other View) int {
	if v.length != other.length {
		if v.length < other.length {
			return -1
		}
		return 1
	}
	return bytes.Compare(v.data, other.data)
}

// Iterator returns a bidirectional iterator positioned at the start of v.
func (v View) Iterator() *Iterator { return &Iterator{data: v.data} }

// IteratorAtEnd returns a bidirectional iterator positioned at the end of v,
// ready for backward iteration.
func (v View) IteratorAtEnd() *Iterator { return &Iterator{data: v.data, offset: len(v.data)} }

// String returns a copy of the borrowed bytes as a Go string.
func (v View) String() string { return string(v.data) }
