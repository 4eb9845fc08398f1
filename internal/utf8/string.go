package utf8

// String is an owned UTF-8 buffer with a cached code-point count.
type String struct {
	data   []byte
	length int
}

// NewString copies data into a new owned String.
func NewString(data []byte) String {
	buf := append([]byte(nil), data...)
	return String{data: buf, length: countCodePoints(buf)}
}

// StringFromView copies a View's bytes into a new owned String.
func StringFromView(v View) String {
	return String{data: append([]byte(nil), v.data...), length: v.length}
}

// View returns a borrowing View over s's buffer.
func (s String) View() View { return View{data: s.data, length: s.length} }

// Len returns the code-point length.
func (s String) Len() int { return s.length }

// ByteLen returns the byte length.
func (s String) ByteLen() int { return len(s.data) }

// Append appends a single code point to s. An invalid code point is
// silently dropped, consistent with this package's no-panic policy.
func (s *String) Append(cp CodePoint) {
	if !cp.Valid() {
		return
	}
	var buf [4]byte
	n, ok := Encode(cp.Value(), buf[:])
	if !ok {
		return
	}
	s.data = append(s.data, buf[:n]...)
	s.length++
}

// AppendString appends another String's contents to s.
func (s *String) AppendString(other String) {
	s.data = append(s.data, other.data...)
	s.length += other.length
}

// At returns the code point at code-point offset i, or ok=false if out of
// range.
func (s String) At(i int) (CodePoint, bool) { return s.View().At(i) }

// Substr returns a borrowed View over count code points starting at offset.
func (s String) Substr(offset, count int) View { return s.View().Substr(offset, count) }

// BeginsWith reports whether s starts with v, bytewise.
func (s String) BeginsWith(v View) bool { return s.View().BeginsWith(v) }

// EndsWith reports whether s ends with v, bytewise.
func (s String) EndsWith(v View) bool { return s.View().EndsWith(v) }

// Equal reports length-plus-bytewise equality.
func (s String) Equal(other String) bool { return s.View().Equal(other.View()) }

// Compare orders s against other by (length, then bytewise).
func (s String) Compare(other String) int { return s.View().Compare(other.View()) }

// Iterator returns a bidirectional iterator over s's contents.
func (s String) Iterator() *Iterator { return s.View().Iterator() }

// String implements fmt.Stringer.
func (s String) String() string { return string(s.data) }
