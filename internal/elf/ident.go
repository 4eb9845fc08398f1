package elf

import "fmt"

// Ident is the 16-byte identification prefix every ELF file begins with.
// Its class and endianness govern how the rest of the file must be parsed,
// which is why it is decoded standalone before anything else.
type Ident struct {
	Magic   [4]byte
	Class   Class
	Endian  Endian
	Version IdentVersion
	ABI     ABI
}

// parseIdent reads the 16-byte ident prefix from span. A bad magic number,
// an unrecognised class or endianness, or a stale version are all
// semantically-wrong-but-parseable conditions: parseIdent never fails on
// them, it just records whatever bytes are present and leaves Valid to
// report the mismatch. Only a span too short to even hold the 16-byte
// prefix is a hard construction error.
func parseIdent(span []byte) (Ident, error) {
	if len(span) < IdentSize {
		return Ident{}, fmt.Errorf("%w: ident prefix needs %d bytes, got %d", ErrTruncated, IdentSize, len(span))
	}
	var magic [4]byte
	copy(magic[:], span[0:4])
	return Ident{
		Magic:   magic,
		Class:   Class(span[4]),
		Endian:  Endian(span[5]),
		Version: IdentVersion(span[6]),
		ABI:     ABI(span[7]),
	}, nil
}

// Valid reports whether the ident prefix carries the expected magic number
// plus a class, endianness and version this reader knows how to interpret.
func (id Ident) Valid() bool {
	switch {
	case id.Magic != Magic:
		return false
	case id.Class != Class32 && id.Class != Class64:
		return false
	case id.Endian != LittleEndian && id.Endian != BigEndian:
		return false
	case id.Version != IdentVersionCurrent:
		return false
	default:
		return true
	}
}
