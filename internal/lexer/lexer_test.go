package lexer

import (
	"testing"

	"github.com/mangrove-lang/mangrove/internal/token"
	"github.com/stretchr/testify/require"
)

type expected struct {
	kind  token.Kind
	value string
}

// collect drains t until (and including) the first eof, dropping whitespace
// and newline tokens, the way the documented scenarios are expressed.
func collect(tk *Tokeniser) []expected {
	var got []expected
	for {
		tok := tk.Next()
		if tok.Kind == token.Whitespace || tok.Kind == token.Newline {
			continue
		}
		got = append(got, expected{tok.Kind, tok.Value})
		if tok.Kind == token.EOF {
			return got
		}
	}
}

func TestScenarioIntegerPrefixes(t *testing.T) {
	tk := New([]byte("0\n07\n0b1001\n0b\n0c11\n0x95\n100\n0a\n"))
	got := collect(tk)
	want := []expected{
		{token.IntLit, "0"},
		{token.IntLit, "07"},
		{token.BinLit, "1001"},
		{token.Invalid, ""},
		{token.OctLit, "11"},
		{token.HexLit, "95"},
		{token.IntLit, "100"},
		{token.IntLit, "0"},
		{token.Ident, "a"},
		{token.EOF, ""},
	}
	require.Equal(t, want, got)
}

func TestScenarioStringAndBareCharLiteral(t *testing.T) {
	tk := New([]byte("\"The quick brown fox\"\n\"\"\n'\n'\n"))
	got := collect(tk)
	require.Equal(t, token.StringLit, got[0].kind)
	require.Equal(t, "The quick brown fox", got[0].value)
	require.Equal(t, token.StringLit, got[1].kind)
	require.Equal(t, "", got[1].value)
	require.Equal(t, token.Invalid, got[2].kind, "a bare newline inside '' is not normal-alpha")
}

func TestScenarioAssignOperators(t *testing.T) {
	tk := New([]byte("a = 1\nb += 2\nj <<= 10\nk >>= 11\n"))
	got := collect(tk)
	want := []expected{
		{token.Ident, "a"}, {token.AssignOp, "="}, {token.IntLit, "1"},
		{token.Ident, "b"}, {token.AssignOp, "+="}, {token.IntLit, "2"},
		{token.Ident, "j"}, {token.AssignOp, "<<="}, {token.IntLit, "10"},
		{token.Ident, "k"}, {token.AssignOp, ">>="}, {token.IntLit, "11"},
		{token.EOF, ""},
	}
	require.Equal(t, want, got)
}

func TestScenarioKeywords(t *testing.T) {
	tk := New([]byte("true\nnot\nif\nelif\nclass\n"))
	got := collect(tk)
	want := []expected{
		{token.BoolLit, "true"},
		{token.LogicOp, "!"},
		{token.IfStmt, "if"},
		{token.ElifStmt, "elif"},
		{token.ClassDef, "class"},
		{token.EOF, ""},
	}
	require.Equal(t, want, got)
}

func TestScenarioEllipsisDisambiguation(t *testing.T) {
	tk := New([]byte(". .. ... ...."))
	got := collect(tk)
	want := []expected{
		{token.Dot, "."},
		{token.Dot, "."}, {token.Dot, "."},
		{token.Ellipsis, "..."},
		{token.Ellipsis, "..."}, {token.Dot, "."},
		{token.EOF, ""},
	}
	require.Equal(t, want, got)
}

func TestScenarioComments(t *testing.T) {
	tk := New([]byte("/* foo */"))
	got := collect(tk)
	require.Equal(t, token.Comment, got[0].kind)
	require.Equal(t, " foo ", got[0].value)

	tk2 := New([]byte("// bar"))
	got2 := collect(tk2)
	require.Equal(t, token.Comment, got2[0].kind)
	require.Equal(t, " bar", got2[0].value)
}

func TestEOFRepeatsForever(t *testing.T) {
	tk := New([]byte(""))
	for i := 0; i < 3; i++ {
		tok := tk.Next()
		require.Equal(t, token.EOF, tok.Kind)
	}
}

func TestSpansPartitionTheWholeInput(t *testing.T) {
	input := "a+b"
	tk := New([]byte(input))
	var lastEnd token.Position
	for {
		tok := tk.Next()
		if tok.Kind == token.EOF {
			break
		}
		require.Equal(t, lastEnd, tok.Span.Begin)
		lastEnd = tok.Span.End
	}
	require.Equal(t, len(input), lastEnd.Character)
}

func TestDecoratorToken(t *testing.T) {
	tk := New([]byte("@override\n"))
	got := collect(tk)
	require.Equal(t, token.Decorator, got[0].kind)
	require.Equal(t, "override", got[0].value)
}

func TestCRLFCountsAsOneLineBreak(t *testing.T) {
	tk := New([]byte("a\r\nb"))
	_ = tk.Next() // "a"
	_ = tk.Next() // newline for \r
	_ = tk.Next() // newline for \n
	tok := tk.Next()
	require.Equal(t, "b", tok.Value)
	require.Equal(t, 1, tok.Span.Begin.Line)
}

func TestUnicodeEscapeInString(t *testing.T) {
	tk := New([]byte(`"\u41"`))
	tok := tk.Next()
	require.Equal(t, token.StringLit, tok.Kind)
	require.Equal(t, "A", tok.Value)
}

func TestNamedEscapesInString(t *testing.T) {
	tk := New([]byte(`"\n\t\\"`))
	tok := tk.Next()
	require.Equal(t, token.StringLit, tok.Kind)
	require.Equal(t, "\n\t\\", tok.Value)
}
