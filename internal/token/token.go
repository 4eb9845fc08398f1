// Package token defines the tokeniser's output vocabulary: token kinds,
// source positions, and the Token value itself.
package token

import "fmt"

// Kind classifies a lexical fragment.
type Kind int

const (
	Invalid Kind = iota
	EOF
	Whitespace
	Comment
	Newline
	Dot
	Ellipsis
	Semi
	Ident
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftSquare
	RightSquare
	Comma
	Colon
	BinLit
	OctLit
	HexLit
	IntLit
	StringLit
	CharLit
	BoolLit
	Float32Lit
	Float64Lit
	NullptrLit
	Invert
	IncOp
	MulOp
	AddOp
	ShiftOp
	BitOp
	RelOp
	EquOp
	LogicOp
	LocationSpec
	StorageSpec
	Type
	AssignOp
	FromStmt
	ImportStmt
	AsStmt
	NewStmt
	DeleteStmt
	ReturnStmt
	IfStmt
	ElifStmt
	ElseStmt
	ForStmt
	WhileStmt
	DoStmt
	NoneType
	Arrow
	ClassDef
	EnumDef
	FunctionDef
	OperatorDef
	Decorator
	Visibility
	Unsafe
)

var kindNames = [...]string{
	Invalid: "invalid", EOF: "eof", Whitespace: "whitespace", Comment: "comment",
	Newline: "newline", Dot: "dot", Ellipsis: "ellipsis", Semi: "semi", Ident: "ident",
	LeftParen: "leftParen", RightParen: "rightParen", LeftBrace: "leftBrace", RightBrace: "rightBrace",
	LeftSquare: "leftSquare", RightSquare: "rightSquare", Comma: "comma", Colon: "colon",
	BinLit: "binLit", OctLit: "octLit", HexLit: "hexLit", IntLit: "intLit",
	StringLit: "stringLit", CharLit: "charLit", BoolLit: "boolLit",
	Float32Lit: "float32Lit", Float64Lit: "float64Lit", NullptrLit: "nullptrLit",
	Invert: "invert", IncOp: "incOp", MulOp: "mulOp", AddOp: "addOp", ShiftOp: "shiftOp",
	BitOp: "bitOp", RelOp: "relOp", EquOp: "equOp", LogicOp: "logicOp",
	LocationSpec: "locationSpec", StorageSpec: "storageSpec", Type: "type", AssignOp: "assignOp",
	FromStmt: "fromStmt", ImportStmt: "importStmt", AsStmt: "asStmt", NewStmt: "newStmt",
	DeleteStmt: "deleteStmt", ReturnStmt: "returnStmt", IfStmt: "ifStmt", ElifStmt: "elifStmt",
	ElseStmt: "elseStmt", ForStmt: "forStmt", WhileStmt: "whileStmt", DoStmt: "doStmt",
	NoneType: "noneType", Arrow: "arrow", ClassDef: "classDef", EnumDef: "enumDef",
	FunctionDef: "functionDef", OperatorDef: "operatorDef", Decorator: "decorator",
	Visibility: "visibility", Unsafe: "unsafe",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return fmt.Sprintf("<kind=%d>", int(k))
	}
	return kindNames[k]
}

// Position is a zero-based (line, character) source coordinate.
type Position struct {
	Line      int
	Character int
}

// Span is a half-open source range [Begin, End).
type Span struct {
	Begin Position
	End   Position
}

// Token is a classified lexical fragment with its source span and, where
// applicable, its text (identifier name, literal body, or operator text).
type Token struct {
	Kind  Kind
	Value string
	Span  Span
}

// Reset clears t for reuse as the next token, carrying its Begin position
// forward from the previous token's End: this is how consecutive tokens
// compose a gapless partition of the source.
func (t *Token) Reset() {
	t.Kind = Invalid
	t.Value = ""
	t.Span.Begin = t.Span.End
}

// Set finalises t's kind, value, and end position. Begin is left untouched
// (it was already set by the preceding Reset).
func (t *Token) Set(kind Kind, value string, end Position) {
	t.Kind = kind
	t.Value = value
	t.Span.End = end
}
