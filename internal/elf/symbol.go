package elf

// SymbolBinding is the linkage visibility encoded in the high nibble of a
// symbol's info byte (STB_*).
type SymbolBinding uint8

const (
	SymbolBindingLocal  SymbolBinding = 0
	SymbolBindingGlobal SymbolBinding = 1
	SymbolBindingWeak   SymbolBinding = 2
)

// SymbolType is the kind encoded in the low nibble of a symbol's info byte
// (STT_*). Unrelated to internal/symtab.SymbolType, which models the
// language's own type system rather than the object-file format's.
type SymbolType uint8

const (
	SymbolTypeNone    SymbolType = 0
	SymbolTypeObject  SymbolType = 1
	SymbolTypeFunc    SymbolType = 2
	SymbolTypeSection SymbolType = 3
	SymbolTypeFile    SymbolType = 4
)

// SymbolVisibility is the low two bits of a symbol's "other" byte (STV_*).
type SymbolVisibility uint8

const (
	SymbolVisibilityDefault   SymbolVisibility = 0
	SymbolVisibilityInternal  SymbolVisibility = 1
	SymbolVisibilityHidden    SymbolVisibility = 2
	SymbolVisibilityProtected SymbolVisibility = 3
)

type rawSymbol interface {
	stName() uint32
	stValue() uint64
	stSize() uint64
	stInfo() uint8
	stOther() uint8
	stShndx() uint16
}

type elf32Symbol struct{ r Reader }

func (s elf32Symbol) stName() uint32  { v, _ := s.r.Uint32(0); return v }
func (s elf32Symbol) stValue() uint64 { v, _ := s.r.Uint32(4); return uint64(v) }
func (s elf32Symbol) stSize() uint64  { v, _ := s.r.Uint32(8); return uint64(v) }
func (s elf32Symbol) stInfo() uint8   { v, _ := s.r.Byte(12); return v }
func (s elf32Symbol) stOther() uint8  { v, _ := s.r.Byte(13); return v }
func (s elf32Symbol) stShndx() uint16 { v, _ := s.r.Uint16(14); return v }

type elf64Symbol struct{ r Reader }

func (s elf64Symbol) stName() uint32  { v, _ := s.r.Uint32(0); return v }
func (s elf64Symbol) stInfo() uint8   { v, _ := s.r.Byte(4); return v }
func (s elf64Symbol) stOther() uint8  { v, _ := s.r.Byte(5); return v }
func (s elf64Symbol) stShndx() uint16 { v, _ := s.r.Uint16(6); return v }
func (s elf64Symbol) stValue() uint64 { v, _ := s.r.Uint64(8); return v }
func (s elf64Symbol) stSize() uint64  { v, _ := s.r.Uint64(16); return v }

// Symbol is the unified logical view of a symbol table entry.
type Symbol struct {
	NameOffset uint32
	Value      uint64
	Size       uint64
	Binding    SymbolBinding
	Type       SymbolType
	Visibility SymbolVisibility
	SectionIdx uint16
}

// parseSymbol reads one symbol table entry out of span.
func parseSymbol(span []byte, class Class, order Endian) (Symbol, error) {
	r := NewReader(span, order)
	var raw rawSymbol
	switch class {
	case Class32:
		if len(span) < SymbolSize32 {
			return Symbol{}, ErrTruncated
		}
		raw = elf32Symbol{r: r}
	case Class64:
		if len(span) < SymbolSize64 {
			return Symbol{}, ErrTruncated
		}
		raw = elf64Symbol{r: r}
	default:
		return Symbol{}, ErrUnsupportedClass
	}
	info := raw.stInfo()
	other := raw.stOther()
	return Symbol{
		NameOffset: raw.stName(),
		Value:      raw.stValue(),
		Size:       raw.stSize(),
		Binding:    SymbolBinding(info >> 4),
		Type:       SymbolType(info & 0x0F),
		Visibility: SymbolVisibility(other & 0x03),
		SectionIdx: raw.stShndx(),
	}, nil
}

// isReservedZero reports whether the raw entry at span is the all-zero
// symbol every ELF symbol table reserves at index 0.
func isReservedZero(span []byte) bool {
	for _, b := range span {
		if b != 0 {
			return false
		}
	}
	return true
}

func symbolEntrySize(class Class) int {
	switch class {
	case Class32:
		return SymbolSize32
	case Class64:
		return SymbolSize64
	default:
		return 0
	}
}
