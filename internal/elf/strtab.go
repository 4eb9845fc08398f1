package elf

import "bytes"

// StringTable is a read-only view over the raw bytes of a .strtab section:
// a flat byte span holding NUL-terminated strings, addressed by byte
// offset from section headers and symbol NameOffset fields. There is no
// equivalent retrieved from the original sources; this is designed fresh
// to match the ELF string table convention directly.
type StringTable struct {
	span []byte
}

// NewStringTable wraps span as a string table.
func NewStringTable(span []byte) StringTable {
	return StringTable{span: span}
}

// String returns the NUL-terminated string starting at offset. ok is false
// if offset is out of range; an offset pointing at the table's trailing NUL
// (or any NUL byte) legitimately yields the empty string.
func (t StringTable) String(offset uint32) (string, bool) {
	if int(offset) >= len(t.span) {
		return "", false
	}
	end := bytes.IndexByte(t.span[offset:], 0)
	if end < 0 {
		return "", false
	}
	return string(t.span[offset : int(offset)+end]), true
}

// MustString is String without the ok result, returning "" for an
// out-of-range or unterminated offset.
func (t StringTable) MustString(offset uint32) string {
	s, _ := t.String(offset)
	return s
}
