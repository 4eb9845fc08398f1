package utf8

// CodePoint packs a Unicode scalar value, its original encoded length, and a
// validity flag into a single uint32: bits 0-23 hold the value, bits 30-31
// hold length-minus-one, and bit 28 holds the valid flag.
type CodePoint uint32

const (
	codePointMask uint32 = 0x00ffffff
	validMask     uint32 = 0x10000000
	lengthMask    uint32 = 0xc0000000
	lengthShift          = 30
)

// InvalidCodePoint is the sentinel returned when there is no code point to
// decode, e.g. at end of stream. It is distinct from a CodePoint whose valid
// bit is merely unset.
const InvalidCodePoint CodePoint = 0xffffffff

func pack(value uint32, length int, valid bool) CodePoint {
	cp := (value & codePointMask) | (uint32(length-1) << lengthShift)
	if valid {
		cp |= validMask
	}
	return CodePoint(cp)
}

// Value returns the scalar value. For an invalid CodePoint this is whatever
// bits were captured before validity failed; callers must check Valid first.
func (c CodePoint) Value() rune { return rune(uint32(c) & codePointMask) }

// Length returns the original encoded length in bytes, 1-4.
func (c CodePoint) Length() int { return int((uint32(c)&lengthMask)>>lengthShift) + 1 }

// Valid reports whether this is a well-formed code point.
func (c CodePoint) Valid() bool { return c != InvalidCodePoint && uint32(c)&validMask != 0 }

func isSurrogate(value rune) bool { return value >= 0xD800 && value <= 0xDFFF }

// EncodeLength returns the number of UTF-8 bytes needed to encode value, or
// false if value is not a valid code point (out of range or a surrogate).
func EncodeLength(value rune) (int, bool) {
	switch {
	case value < 0:
		return 0, false
	case value < 0x80:
		return 1, true
	case value < 0x800:
		return 2, true
	case value < 0x10000:
		if isSurrogate(value) {
			return 0, false
		}
		return 3, true
	case value < 0x110000:
		return 4, true
	default:
		return 0, false
	}
}

// FromScalar builds a CodePoint from a raw scalar value, validating range
// and surrogate exclusion.
func FromScalar(value rune) CodePoint {
	length, ok := EncodeLength(value)
	if !ok {
		return pack(uint32(value), 1, false)
	}
	return pack(uint32(value), length, true)
}

// Encode writes value's UTF-8 encoding into buf, returning the number of
// bytes written. It writes exactly the bytes Decode would need to consume to
// reproduce value; it fails if value is invalid or buf is too short.
func Encode(value rune, buf []byte) (int, bool) {
	length, ok := EncodeLength(value)
	if !ok || len(buf) < length {
		return 0, false
	}
	switch length {
	case 1:
		buf[0] = byte(value)
	case 2:
		buf[0] = 0xC0 | byte(value>>6)
		buf[1] = 0x80 | byte(value&0x3F)
	case 3:
		buf[0] = 0xE0 | byte(value>>12)
		buf[1] = 0x80 | byte((value>>6)&0x3F)
		buf[2] = 0x80 | byte(value&0x3F)
	case 4:
		buf[0] = 0xF0 | byte(value>>18)
		buf[1] = 0x80 | byte((value>>12)&0x3F)
		buf[2] = 0x80 | byte((value>>6)&0x3F)
		buf[3] = 0x80 | byte(value&0x3F)
	}
	return length, true
}

func isContinuation(b byte) bool { return b&0xC0 == 0x80 }

// Decode reads one code point from the start of b, returning the code point
// and the number of bytes consumed. A malformed sequence yields an invalid
// CodePoint; the returned length is always at least 1 so callers can resync.
func Decode(b []byte) (CodePoint, int) {
	if len(b) == 0 {
		return InvalidCodePoint, 0
	}
	b0 := b[0]
	switch {
	case b0 < 0x80:
		return pack(uint32(b0), 1, true), 1
	case b0&0xE0 == 0xC0:
		return decodeMulti(b, uint32(b0&0x1F), 2, 0x80)
	case b0&0xF0 == 0xE0:
		return decodeMulti(b, uint32(b0&0x0F), 3, 0x800)
	case b0&0xF8 == 0xF0:
		return decodeMulti(b, uint32(b0&0x07), 4, 0x10000)
	default:
		return pack(uint32(b0), 1, false), 1
	}
}

func decodeMulti(b []byte, leadValue uint32, length int, minValue uint32) (CodePoint, int) {
	value := leadValue
	consumed := 1
	for i := 1; i < length; i++ {
		if i >= len(b) || !isContinuation(b[i]) {
			return pack(value, consumed, false), consumed
		}
		value = (value << 6) | uint32(b[i]&0x3F)
		consumed++
	}
	if value < minValue || (length == 3 && isSurrogate(rune(value))) || (length == 4 && value >= 0x110000) {
		return pack(value, length, false), length
	}
	return pack(value, length, true), length
}

// Cursor is a byte source that can seek backward by one byte, the minimum
// rewind a streaming decoder needs to recover from a malformed continuation
// byte (the offending byte is re-read as the start of the next code point).
type Cursor interface {
	// NextByte returns the next byte, or ok=false at end of stream.
	NextByte() (b byte, ok bool)
	// UnreadByte pushes the most recently read byte back onto the stream.
	UnreadByte()
}

// DecodeCursor reads one code point from c. It returns InvalidCodePoint at
// end of stream. On a non-continuation byte appearing where a continuation
// was required, it seeks back one byte and returns an invalid CodePoint.
func DecodeCursor(c Cursor) CodePoint {
	b0, ok := c.NextByte()
	if !ok {
		return InvalidCodePoint
	}
	switch {
	case b0 < 0x80:
		return pack(uint32(b0), 1, true)
	case b0&0xE0 == 0xC0:
		return decodeCursorMulti(c, uint32(b0&0x1F), 2, 0x80)
	case b0&0xF0 == 0xE0:
		return decodeCursorMulti(c, uint32(b0&0x0F), 3, 0x800)
	case b0&0xF8 == 0xF0:
		return decodeCursorMulti(c, uint32(b0&0x07), 4, 0x10000)
	default:
		return pack(uint32(b0), 1, false)
	}
}

func decodeCursorMulti(c Cursor, leadValue uint32, length int, minValue uint32) CodePoint {
	value := leadValue
	for i := 1; i < length; i++ {
		b, ok := c.NextByte()
		if !ok {
			return pack(value, i, false)
		}
		if !isContinuation(b) {
			c.UnreadByte()
			return pack(value, i, false)
		}
		value = (value << 6) | uint32(b&0x3F)
	}
	if value < minValue || (length == 3 && isSurrogate(rune(value))) || (length == 4 && value >= 0x110000) {
		return pack(value, length, false)
	}
	return pack(value, length, true)
}
