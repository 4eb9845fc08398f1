package symtab

import (
	"fmt"

	"github.com/mangrove-lang/mangrove/internal/flagset"
)

// SymbolTypes enumerates the independent type-flag bits a SymbolType can
// carry. Values are bit indices, not bit-literal masks: SymbolType composes
// them with flagset.BitFlags, which shifts each value into its own bit.
type SymbolTypes uint32

const (
	Unsigned  SymbolTypes = 1
	Int16     SymbolTypes = 2
	Int32     SymbolTypes = 3
	Int64     SymbolTypes = 4
	Character SymbolTypes = 8
	List      SymbolTypes = 9
	Struct    SymbolTypes = 10
	Array     SymbolTypes = 11
	Bool      SymbolTypes = 12
	Function  SymbolTypes = 13
	Reference SymbolTypes = 14
	Pointer   SymbolTypes = 15
	Pack      SymbolTypes = 16
	Auto      SymbolTypes = 17
	None      SymbolTypes = 18
	Type      SymbolTypes = 19
)

// TypeFlags is a bag of SymbolTypes bits.
type TypeFlags = flagset.BitFlags[SymbolTypes]

// SymbolType is the type carried by a Symbol: a bag of independent flags.
// A width flag is absent for 8-bit integers and the unsigned flag is absent
// for signed integers; there is no separate "int8"/"signed" bit.
type SymbolType struct {
	flags TypeFlags
}

// TypeOf builds a SymbolType from the given flag bits.
func TypeOf(bits ...SymbolTypes) SymbolType {
	var f TypeFlags
	for _, b := range bits {
		f = f.Set(b)
	}
	return SymbolType{flags: f}
}

// Has reports whether flag bit b is set.
func (t SymbolType) Has(b SymbolTypes) bool { return t.flags.Has(b) }

// Includes reports whether every flag set in other is also set in t.
func (t SymbolType) Includes(other SymbolType) bool { return t.flags.Includes(other.flags) }

// Without returns a copy of t with flag bit b cleared.
func (t SymbolType) Without(b SymbolTypes) SymbolType { return SymbolType{flags: t.flags.Without(b)} }

// IsType reports whether this type denotes a type itself (as opposed to a
// plain value binding), i.e. whether the Type flag bit is set.
func (t SymbolType) IsType() bool { return t.Has(Type) }

// IsInvalid reports whether no flag at all is set; such a SymbolType carries
// no usable type information.
func (t SymbolType) IsInvalid() bool { return t.flags == 0 }

func integerName(t SymbolType) string {
	width := 8
	switch {
	case t.Has(Int64):
		width = 64
	case t.Has(Int32):
		width = 32
	case t.Has(Int16):
		width = 16
	}
	if t.Has(Unsigned) {
		return fmt.Sprintf("UInt%d", width)
	}
	return fmt.Sprintf("Int%d", width)
}

// String formats a SymbolType the way the bootstrap compiler's diagnostics
// do: a base name for the widest applicable category, decorated with
// reference/pointer/pack suffixes.
func (t SymbolType) String() string {
	if t.IsInvalid() {
		return "<invalid type>"
	}

	var name string
	switch {
	case t.Has(None):
		name = "none"
	case t.Has(Auto):
		name = "auto"
	case t.Has(Bool):
		name = "Bool"
	case t.Has(Character):
		if t.Has(List) {
			name = "String"
		} else {
			name = "Char"
		}
	case t.Has(Struct):
		switch {
		case t.Has(List):
			name = "Dict"
		case t.Has(Array):
			name = "Set"
		default:
			name = "struct"
		}
	case t.Has(List):
		name = "List"
	case t.Has(Array):
		name = "Array"
	case t.Has(Function):
		name = "function"
	case t.flags == TypeOf(Type).flags:
		name = "type"
	default:
		name = integerName(t)
	}

	if t.Has(Reference) {
		name += "&"
	}
	if t.Has(Pointer) {
		name += "*"
	}
	if t.Has(Pack) {
		name += "..."
	}
	return name
}
