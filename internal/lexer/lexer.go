// Package lexer implements the single-pass tokeniser: a byte-stream reader
// with one-code-point lookahead that produces a lazy stream of positioned
// tokens.
package lexer

import (
	"strconv"

	"github.com/mangrove-lang/mangrove/internal/logging"
	"github.com/mangrove-lang/mangrove/internal/token"
	"github.com/mangrove-lang/mangrove/internal/utf8"
)

// Option configures a Tokeniser at construction.
type Option func(*Tokeniser)

// WithLogHook routes a Tokeniser's diagnostic records through hook.
func WithLogHook(hook logging.Hook) Option {
	return func(t *Tokeniser) { t.hook = hook }
}

// Tokeniser reads UTF-8 bytes and produces a stream of Tokens. It owns its
// byte source exclusively; there is no explicit close step, matching the
// single-threaded, exception-free design this package follows throughout.
type Tokeniser struct {
	src      *source
	current  utf8.CodePoint
	pos      token.Position
	lastWasCR bool
	tok      token.Token
	hook     logging.Hook
}

// New creates a Tokeniser over data, priming its one-code-point lookahead.
func New(data []byte, opts ...Option) *Tokeniser {
	t := &Tokeniser{src: newSource(data), hook: logging.Nop}
	for _, opt := range opts {
		opt(t)
	}
	t.current = utf8.DecodeCursor(t.src)
	return t
}

// Token returns the most recently emitted token, without advancing.
func (t *Tokeniser) Token() token.Token { return t.tok }

// Next advances to and returns the next token. Once the source is
// exhausted, Next returns an eof token on every call.
func (t *Tokeniser) Next() token.Token {
	t.tok.Reset()
	t.readToken()
	return t.tok
}

func (t *Tokeniser) advancePosition(cp utf8.CodePoint) {
	if cp == utf8.InvalidCodePoint {
		return
	}
	switch cp.Value() {
	case '\r':
		t.pos.Line++
		t.pos.Character = 0
		t.lastWasCR = true
	case '\n':
		if t.lastWasCR {
			t.lastWasCR = false
		} else {
			t.pos.Line++
			t.pos.Character = 0
		}
	default:
		t.lastWasCR = false
		t.pos.Character++
	}
}

// nextChar returns the current lookahead, consumes it (advancing position),
// and primes the following code point as the new lookahead.
func (t *Tokeniser) nextChar() utf8.CodePoint {
	cp := t.current
	t.advancePosition(cp)
	t.current = utf8.DecodeCursor(t.src)
	return cp
}

func (t *Tokeniser) finalise(kind token.Kind, value string) {
	t.tok.Set(kind, value, t.pos)
	t.hook(logging.ScopeLexer, "token %s %q", kind, value)
}

func (t *Tokeniser) readToken() {
	if t.current == utf8.InvalidCodePoint {
		t.finalise(token.EOF, "")
		return
	}
	if t.current.Valid() {
		switch v := t.current.Value(); {
		case v == ' ' || v == '\t':
			t.nextChar()
			t.finalise(token.Whitespace, "")
			return
		case v == '\r' || v == '\n':
			t.nextChar()
			t.finalise(token.Newline, "")
			return
		case v == '#':
			t.nextChar()
			t.readLineCommentBody()
			return
		case v == '.':
			t.readEllipsis()
			return
		case v == ';':
			t.nextChar()
			t.finalise(token.Semi, "")
			return
		case v == '{':
			t.nextChar()
			t.finalise(token.LeftBrace, "")
			return
		case v == '}':
			t.nextChar()
			t.finalise(token.RightBrace, "")
			return
		case v == '(':
			t.nextChar()
			t.finalise(token.LeftParen, "")
			return
		case v == ')':
			t.nextChar()
			t.finalise(token.RightParen, "")
			return
		case v == '[':
			t.nextChar()
			t.finalise(token.LeftSquare, "")
			return
		case v == ']':
			t.nextChar()
			t.finalise(token.RightSquare, "")
			return
		case v == ',':
			t.nextChar()
			t.finalise(token.Comma, "")
			return
		case v == ':':
			t.nextChar()
			t.finalise(token.Colon, "")
			return
		case v == '"':
			t.readStringLiteral()
			return
		case v == '\'':
			t.readCharLiteral()
			return
		case v == '~':
			t.nextChar()
			t.finalise(token.Invert, "~")
			return
		case v == '/':
			t.readDivOrComment()
			return
		case v == '*' || v == '%':
			t.readMulOp(v)
			return
		case v == '+' || v == '-':
			t.readAddOp(v)
			return
		case v == '&' || v == '|':
			t.readBoolOp(v)
			return
		case v == '^':
			t.readBitwiseOp()
			return
		case v == '<' || v == '>':
			t.readRelationOp(v)
			return
		case v == '!' || v == '=':
			t.readEqualityOp(v)
			return
		case v == '@':
			t.readDecorator()
			return
		}
	}
	t.readExtended()
}

func (t *Tokeniser) readExtended() {
	cp := t.current
	if cp.Valid() {
		v := cp.Value()
		if isAlpha(v) || v == '_' {
			t.readIdentOrKeyword()
			return
		}
		if isDigit(v) {
			t.readNumber()
			return
		}
	}
	t.nextChar()
	t.finalise(token.Invalid, "")
}

func (t *Tokeniser) readIdentOrKeyword() {
	var text []rune
	for t.current.Valid() {
		v := t.current.Value()
		if !isAlpha(v) && !isDigit(v) && v != '_' {
			break
		}
		text = append(text, v)
		t.nextChar()
	}
	kind, value := classifyWord(string(text))
	t.finalise(kind, value)
}

func (t *Tokeniser) readDecorator() {
	t.nextChar() // consume '@'
	var text []rune
	for t.current.Valid() {
		v := t.current.Value()
		if !isAlpha(v) && !isDigit(v) && v != '_' {
			break
		}
		text = append(text, v)
		t.nextChar()
	}
	t.finalise(token.Decorator, string(text))
}

func (t *Tokeniser) readEllipsis() {
	rememberedOffset := t.src.Offset()
	t.nextChar() // consume the first '.'
	posAfterFirst := t.pos
	c1 := t.current
	t.nextChar() // consume c1
	c2 := t.current

	if c1.Valid() && c1.Value() == '.' && c2.Valid() && c2.Value() == '.' {
		t.nextChar() // consume c2, prime the char after the ellipsis
		t.finalise(token.Ellipsis, "...")
		return
	}

	t.src.SeekTo(rememberedOffset)
	t.pos = posAfterFirst
	t.current = utf8.DecodeCursor(t.src)
	t.finalise(token.Dot, ".")
}

func (t *Tokeniser) readLineCommentBody() {
	var text []rune
	for t.current != utf8.InvalidCodePoint {
		if t.current.Valid() {
			v := t.current.Value()
			if v == '\r' || v == '\n' {
				break
			}
			text = append(text, v)
		}
		t.nextChar()
	}
	t.finalise(token.Comment, string(text))
}

func (t *Tokeniser) readDivOrComment() {
	t.nextChar() // consume '/'
	if t.current.Valid() {
		switch t.current.Value() {
		case '=':
			t.nextChar()
			t.finalise(token.AssignOp, "/=")
			return
		case '*':
			t.readBlockComment()
			return
		case '/':
			t.nextChar()
			t.readLineCommentBody()
			return
		}
	}
	t.finalise(token.MulOp, "/")
}

func (t *Tokeniser) readBlockComment() {
	t.nextChar() // consume '*'
	var text []rune
	for t.current != utf8.InvalidCodePoint {
		if t.current.Valid() && t.current.Value() == '*' {
			t.nextChar() // consume '*'
			if t.current.Valid() && t.current.Value() == '/' {
				t.nextChar() // consume '/'
				t.finalise(token.Comment, string(text))
				return
			}
			text = append(text, '*')
			continue
		}
		if t.current.Valid() {
			text = append(text, t.current.Value())
		}
		t.nextChar()
	}
	// EOF before the closing */: best-effort, kind stays comment.
	t.finalise(token.Comment, string(text))
}

func (t *Tokeniser) readMulOp(x rune) {
	t.nextChar()
	if t.current.Valid() && t.current.Value() == '=' {
		t.nextChar()
		t.finalise(token.AssignOp, string(x)+"=")
		return
	}
	t.finalise(token.MulOp, string(x))
}

func (t *Tokeniser) readAddOp(x rune) {
	t.nextChar()
	switch {
	case t.current.Valid() && t.current.Value() == '=':
		t.nextChar()
		t.finalise(token.AssignOp, string(x)+"=")
	case x == '-' && t.current.Valid() && t.current.Value() == '>':
		t.nextChar()
		t.finalise(token.Arrow, "->")
	case t.current.Valid() && t.current.Value() == x:
		t.nextChar()
		t.finalise(token.IncOp, string(x))
	default:
		t.finalise(token.AddOp, string(x))
	}
}

func (t *Tokeniser) readBoolOp(x rune) {
	t.nextChar()
	switch {
	case t.current.Valid() && t.current.Value() == '=':
		t.nextChar()
		t.finalise(token.AssignOp, string(x)+"=")
	case t.current.Valid() && t.current.Value() == x:
		t.nextChar()
		t.finalise(token.LogicOp, string(x))
	default:
		t.finalise(token.BitOp, string(x))
	}
}

func (t *Tokeniser) readBitwiseOp() {
	t.nextChar() // consume '^'
	if t.current.Valid() && t.current.Value() == '=' {
		t.nextChar()
		t.finalise(token.AssignOp, "^=")
		return
	}
	t.finalise(token.BitOp, "^")
}

func (t *Tokeniser) readRelationOp(x rune) {
	t.nextChar()
	if t.current.Valid() && t.current.Value() == '=' {
		t.nextChar()
		t.finalise(token.AssignOp, string(x)+"=")
		return
	}
	if t.current.Valid() && t.current.Value() == x {
		t.nextChar()
		if t.current.Valid() && t.current.Value() == '=' {
			t.nextChar()
			t.finalise(token.AssignOp, string(x)+string(x)+"=")
			return
		}
		t.finalise(token.ShiftOp, string(x)+string(x))
		return
	}
	t.finalise(token.RelOp, string(x))
}

func (t *Tokeniser) readEqualityOp(x rune) {
	t.nextChar()
	if t.current.Valid() && t.current.Value() == '=' {
		t.nextChar()
		t.finalise(token.EquOp, string(x)+"=")
		return
	}
	if x == '=' {
		t.finalise(token.AssignOp, "=")
		return
	}
	t.finalise(token.Invert, "!")
}

func (t *Tokeniser) readNumber() {
	if t.current.Value() == '0' {
		t.nextChar()
		if t.current.Valid() {
			switch t.current.Value() {
			case 'b', 'B':
				t.nextChar()
				t.readDigitRun(token.BinLit, isBin)
				return
			case 'c', 'C':
				t.nextChar()
				t.readDigitRun(token.OctLit, isOct)
				return
			case 'x', 'X':
				t.nextChar()
				t.readDigitRun(token.HexLit, isHex)
				return
			}
		}
		text := []rune{'0'}
		for t.current.Valid() && isDigit(t.current.Value()) {
			text = append(text, t.current.Value())
			t.nextChar()
		}
		t.finalise(token.IntLit, string(text))
		return
	}

	var text []rune
	for t.current.Valid() && isDigit(t.current.Value()) {
		text = append(text, t.current.Value())
		t.nextChar()
	}
	t.finalise(token.IntLit, string(text))
}

func (t *Tokeniser) readDigitRun(kind token.Kind, pred func(rune) bool) {
	var text []rune
	for t.current.Valid() && pred(t.current.Value()) {
		text = append(text, t.current.Value())
		t.nextChar()
	}
	if len(text) == 0 {
		t.finalise(token.Invalid, "")
		return
	}
	t.finalise(kind, string(text))
}

// readUnicode implements the shared escape-decoding rule used by both
// string and character literals: a normal-alpha code point or normal itself
// is returned as-is; a backslash introduces an escape sequence, including
// an inline hex-literal read for \u/\U that does not disturb the enclosing
// literal's token state (this package never touches t.tok until the
// enclosing literal finalises, so "preserved across the inner read" holds
// automatically).
func (t *Tokeniser) readUnicode(normal, escaped rune) (rune, bool) {
	if !t.current.Valid() {
		return 0, false
	}
	v := t.current.Value()
	if isNormalAlpha(v) || v == normal {
		t.nextChar()
		return v, true
	}
	if v == '\\' {
		t.nextChar()
		return t.readEscape(escaped)
	}
	return 0, false
}

func (t *Tokeniser) readEscape(escaped rune) (rune, bool) {
	if !t.current.Valid() {
		return 0, false
	}
	v := t.current.Value()
	switch v {
	case '\\':
		t.nextChar()
		return 0x5C, true
	case 'b':
		t.nextChar()
		return 0x08, true
	case 'r':
		t.nextChar()
		return 0x0D, true
	case 'n':
		t.nextChar()
		return 0x0A, true
	case 't':
		t.nextChar()
		return 0x09, true
	case 'v':
		t.nextChar()
		return 0x0B, true
	case 'f':
		t.nextChar()
		return 0x0C, true
	case 'a':
		t.nextChar()
		return 0x07, true
	case 'u', 'U':
		t.nextChar()
		return t.readUnicodeEscapeHex()
	default:
		if v == escaped {
			t.nextChar()
			return escaped, true
		}
		return 0, false
	}
}

func (t *Tokeniser) readUnicodeEscapeHex() (rune, bool) {
	var digits []rune
	for t.current.Valid() && isHex(t.current.Value()) {
		digits = append(digits, t.current.Value())
		t.nextChar()
	}
	if len(digits) == 0 {
		return 0, false
	}
	value, err := strconv.ParseInt(string(digits), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(value), true
}

func (t *Tokeniser) readStringLiteral() {
	t.nextChar() // consume opening '"'
	var text []rune
	for {
		if t.current.Valid() && t.current.Value() == '"' {
			t.nextChar()
			t.finalise(token.StringLit, string(text))
			return
		}
		if t.current == utf8.InvalidCodePoint {
			t.finalise(token.Invalid, string(text))
			return
		}
		v, ok := t.readUnicode('\'', '"')
		if !ok {
			t.finalise(token.Invalid, string(text))
			return
		}
		text = append(text, v)
	}
}

func (t *Tokeniser) readCharLiteral() {
	t.nextChar() // consume opening '\''
	if t.current.Valid() && t.current.Value() == '\'' {
		t.nextChar()
		t.finalise(token.Invalid, "")
		return
	}
	if t.current == utf8.InvalidCodePoint {
		t.finalise(token.Invalid, "")
		return
	}
	v, ok := t.readUnicode('"', '\'')
	if !ok {
		t.finalise(token.Invalid, "")
		return
	}
	if t.current.Valid() && t.current.Value() == '\'' {
		t.nextChar()
		t.finalise(token.CharLit, string([]rune{v}))
		return
	}
	t.finalise(token.Invalid, string([]rune{v}))
}
