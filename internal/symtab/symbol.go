package symtab

import (
	"fmt"

	"github.com/mangrove-lang/mangrove/internal/utf8"
)

// Symbol is an identifier bound to a SymbolType within exactly one Scope.
type Symbol struct {
	identifier utf8.String
	typ        SymbolType
}

// NewSymbol builds a Symbol. The caller is responsible for the non-empty
// identifier invariant; Scope.Insert enforces it before constructing one.
func NewSymbol(identifier utf8.String, typ SymbolType) Symbol {
	return Symbol{identifier: identifier, typ: typ}
}

// Identifier returns the symbol's name.
func (s Symbol) Identifier() utf8.String { return s.identifier }

// Type returns the symbol's type.
func (s Symbol) Type() SymbolType { return s.typ }

// IsType reports whether this symbol denotes a type.
func (s Symbol) IsType() bool { return s.typ.IsType() }

// Clone returns a value copy of s, for re-binding into another scope
// without aliasing the original binding's identity.
func (s Symbol) Clone() Symbol { return Symbol{identifier: s.identifier, typ: s.typ} }

// String implements fmt.Stringer.
func (s Symbol) String() string { return fmt.Sprintf("%s: %s", s.identifier.String(), s.typ.String()) }
