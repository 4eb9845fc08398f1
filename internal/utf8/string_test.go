package utf8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringLenMatchesDecodeCount(t *testing.T) {
	s := NewString([]byte("héllo世\U0001F600"))
	require.Equal(t, 7, s.Len())
}

func TestSubstrClamping(t *testing.T) {
	s := NewString([]byte("hello"))
	v := s.Substr(2, 100)
	require.Equal(t, 3, v.Len())
	require.Equal(t, "llo", v.String())

	v2 := s.Substr(100, 3)
	require.Equal(t, 0, v2.Len())
	require.Equal(t, "", v2.String())
}

func TestAppendKeepsCachedLengthAccurate(t *testing.T) {
	var s String
	s.Append(FromScalar('a'))
	s.Append(FromScalar('世'))
	require.Equal(t, 2, s.Len())
	require.Equal(t, "a世", s.String())
}

func TestOrderingIsLengthThenBytewise(t *testing.T) {
	short := NewString([]byte("zz"))
	long := NewString([]byte("aaa"))
	require.Negative(t, short.Compare(long), "shorter string sorts first regardless of byte content")

	a := NewString([]byte("ab"))
	b := NewString([]byte("ac"))
	require.Negative(t, a.Compare(b))
	require.True(t, a.Equal(NewString([]byte("ab"))))
}

func TestBidirectionalIterator(t *testing.T) {
	s := NewString([]byte("ab世"))
	it := s.Iterator()
	var forward []rune
	for {
		cp, ok := it.Next()
		if !ok {
			break
		}
		forward = append(forward, cp.Value())
	}
	require.Equal(t, []rune{'a', 'b', '世'}, forward)

	back := s.View().IteratorAtEnd()
	var backward []rune
	for {
		cp, ok := back.Prev()
		if !ok {
			break
		}
		backward = append(backward, cp.Value())
	}
	require.Equal(t, []rune{'世', 'b', 'a'}, backward)
}

func TestInvalidBufferHasZeroCachedLength(t *testing.T) {
	v := NewView([]byte{'a', 0xFF, 'b'})
	require.Equal(t, 0, v.Len())
}
