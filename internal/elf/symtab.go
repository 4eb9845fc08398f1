package elf

// SymbolTable is a read-only view over the raw bytes of a .symtab section:
// a span, plus the class and endianness needed to decode entries from it.
// It performs no allocation until an entry is actually materialised.
type SymbolTable struct {
	span  []byte
	class Class
	order Endian
}

// NewSymbolTable wraps span as a symbol table of the given class and
// endianness. It does not validate span; call Valid for that.
func NewSymbolTable(span []byte, class Class, order Endian) SymbolTable {
	return SymbolTable{span: span, class: class, order: order}
}

func (t SymbolTable) entrySize() int { return symbolEntrySize(t.class) }

// Valid reports whether the table's span length is an exact multiple of its
// entry size, and, if the table is non-empty, whether entry 0 is the
// all-zero reserved entry every ELF symbol table must begin with.
func (t SymbolTable) Valid() bool {
	size := t.entrySize()
	if size == 0 || len(t.span)%size != 0 {
		return false
	}
	if len(t.span) == 0 {
		return true
	}
	return isReservedZero(t.span[:size])
}

// Count reports the number of entries in the table, including the reserved
// zero entry at index 0 when present.
func (t SymbolTable) Count() int {
	size := t.entrySize()
	if size == 0 {
		return 0
	}
	return len(t.span) / size
}

// At decodes the entry at index i. It reports ok=false instead of panicking
// when i falls outside [0, Count()), so callers can walk past the end of a
// table without a bounds check of their own.
func (t SymbolTable) At(i int) (Symbol, bool) {
	size := t.entrySize()
	if size == 0 || i < 0 || i >= t.Count() {
		return Symbol{}, false
	}
	start := i * size
	sym, err := parseSymbol(t.span[start:start+size], t.class, t.order)
	if err != nil {
		return Symbol{}, false
	}
	return sym, true
}

// All decodes every entry in the table in order, including the reserved
// zero entry at index 0.
func (t SymbolTable) All() []Symbol {
	out := make([]Symbol, 0, t.Count())
	for i := 0; i < t.Count(); i++ {
		sym, ok := t.At(i)
		if !ok {
			break
		}
		out = append(out, sym)
	}
	return out
}
