package utf8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeLength(t *testing.T) {
	tests := []struct {
		name  string
		value rune
		want  int
		ok    bool
	}{
		{"ascii", 'A', 1, true},
		{"two-byte", 0x7FF, 2, true},
		{"boundary-three-byte", 0x800, 3, true},
		{"surrogate-low", 0xD800, 0, false},
		{"surrogate-high", 0xDFFF, 0, false},
		{"four-byte", 0x10000, 4, true},
		{"max-valid", 0x10FFFF, 4, true},
		{"out-of-range", 0x110000, 0, false},
		{"negative", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EncodeLength(tt.value)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, value := range []rune{0x00, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF} {
		var buf [4]byte
		n, ok := Encode(value, buf[:])
		require.True(t, ok, "encode %x", value)
		cp, consumed := Decode(buf[:n])
		require.True(t, cp.Valid())
		require.Equal(t, n, consumed)
		require.Equal(t, value, cp.Value())
		require.Equal(t, n, cp.Length())
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"lone-continuation", []byte{0x80}},
		{"overlong-two-byte", []byte{0xC0, 0x80}},
		{"truncated-three-byte", []byte{0xE0, 0xA0}},
		{"surrogate", []byte{0xED, 0xA0, 0x80}},
		{"out-of-range", []byte{0xF7, 0xBF, 0xBF, 0xBF}},
		{"lead-pattern-invalid", []byte{0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, n := Decode(tt.in)
			require.False(t, cp.Valid())
			require.GreaterOrEqual(t, n, 1)
		})
	}
}

type sliceCursor struct {
	data []byte
	pos  int
}

func (c *sliceCursor) NextByte() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

func (c *sliceCursor) UnreadByte() {
	if c.pos > 0 {
		c.pos--
	}
}

func TestDecodeCursorSeeksBackOnBadContinuation(t *testing.T) {
	// 0xE0 starts a 3-byte sequence, but 'A' is not a continuation byte.
	// The cursor should seek back so 'A' is re-read as its own code point.
	c := &sliceCursor{data: []byte{0xE0, 'A'}}
	cp := DecodeCursor(c)
	require.False(t, cp.Valid())

	next := DecodeCursor(c)
	require.True(t, next.Valid())
	require.Equal(t, rune('A'), next.Value())
}

func TestDecodeCursorEOF(t *testing.T) {
	c := &sliceCursor{}
	require.Equal(t, InvalidCodePoint, DecodeCursor(c))
}
