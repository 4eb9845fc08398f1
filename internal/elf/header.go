package elf

// rawHeader is implemented once per physical class. Each implementation
// knows its own field widths and byte offsets; decodeHeader picks the right
// one from Ident.Class (via rawHeaderFor) and then widens everything to a uniform logical
// shape, the same split the original's elfHeader_t variant/visit pair used
// to keep the two physical layouts from leaking into callers.
type rawHeader interface {
	entry() uint64
	phOffset() uint64
	shOffset() uint64
	flags() uint32
	ehSize() uint16
	phEntSize() uint16
	phNum() uint16
	shEntSize() uint16
	shNum() uint16
	shStrNdx() uint16
}

type elf32Header struct{ r Reader }

func (h elf32Header) entry() uint64    { v, _ := h.r.Uint32(IdentSize + 8); return uint64(v) }
func (h elf32Header) phOffset() uint64 { v, _ := h.r.Uint32(IdentSize + 12); return uint64(v) }
func (h elf32Header) shOffset() uint64 { v, _ := h.r.Uint32(IdentSize + 16); return uint64(v) }
func (h elf32Header) flags() uint32    { v, _ := h.r.Uint32(IdentSize + 20); return v }
func (h elf32Header) ehSize() uint16   { v, _ := h.r.Uint16(IdentSize + 24); return v }
func (h elf32Header) phEntSize() uint16 { v, _ := h.r.Uint16(IdentSize + 26); return v }
func (h elf32Header) phNum() uint16    { v, _ := h.r.Uint16(IdentSize + 28); return v }
func (h elf32Header) shEntSize() uint16 { v, _ := h.r.Uint16(IdentSize + 30); return v }
func (h elf32Header) shNum() uint16    { v, _ := h.r.Uint16(IdentSize + 32); return v }
func (h elf32Header) shStrNdx() uint16 { v, _ := h.r.Uint16(IdentSize + 34); return v }

type elf64Header struct{ r Reader }

func (h elf64Header) entry() uint64    { v, _ := h.r.Uint64(IdentSize + 8); return v }
func (h elf64Header) phOffset() uint64 { v, _ := h.r.Uint64(IdentSize + 16); return v }
func (h elf64Header) shOffset() uint64 { v, _ := h.r.Uint64(IdentSize + 24); return v }
func (h elf64Header) flags() uint32    { v, _ := h.r.Uint32(IdentSize + 32); return v }
func (h elf64Header) ehSize() uint16   { v, _ := h.r.Uint16(IdentSize + 36); return v }
func (h elf64Header) phEntSize() uint16 { v, _ := h.r.Uint16(IdentSize + 38); return v }
func (h elf64Header) phNum() uint16    { v, _ := h.r.Uint16(IdentSize + 40); return v }
func (h elf64Header) shEntSize() uint16 { v, _ := h.r.Uint16(IdentSize + 42); return v }
func (h elf64Header) shNum() uint16    { v, _ := h.r.Uint16(IdentSize + 44); return v }
func (h elf64Header) shStrNdx() uint16 { v, _ := h.r.Uint16(IdentSize + 46); return v }

// Header is the unified logical view of an ELF file header: addresses and
// offsets are widened to uint64 regardless of class, while narrower fields
// (flags, counts, entry sizes) keep their native width.
type Header struct {
	Ident Ident
	Type  Type

	Machine Machine
	Version Version

	Entry    uint64
	PhOffset uint64
	ShOffset uint64
	Flags    uint32

	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

// rawHeaderFor picks the physical layout to decode the class-specific
// fields with. A class other than 32 or 64 bit has no layout of its own;
// such a header is already doomed to Valid()==false on its Ident, so 32-bit
// is used as a fixed default purely to give the remaining fields somewhere
// to come from.
func rawHeaderFor(class Class, r Reader) rawHeader {
	if class == Class64 {
		return elf64Header{r: r}
	}
	return elf32Header{r: r}
}

// parseHeader reads the ELF header (ident prefix plus the class-specific
// fixed fields that follow it) out of span. A bad magic number, an
// unrecognised class/endian/version, or a span too short to hold the full
// header body are all semantically-wrong-but-parseable conditions: the
// fields Reader can't reach simply read as zero. Valid() reports a short
// span only when the version or header-size field is among the unreadable
// ones; a span that ends after e_ehsize is not detected by Valid(). Only a
// span too short to hold the 16-byte ident prefix fails construction
// outright.
func parseHeader(span []byte) (Header, error) {
	ident, err := parseIdent(span)
	if err != nil {
		return Header{}, err
	}
	return decodeHeader(span, ident), nil
}

// decodeHeader widens the class-specific fields that follow ident into the
// unified Header shape. It performs no validation of its own; callers
// choose whether ident was sniffed from span (parseHeader) or supplied
// out of band (parseHeaderWithClass).
func decodeHeader(span []byte, ident Ident) Header {
	r := NewReader(span, ident.Endian)
	raw := rawHeaderFor(ident.Class, r)

	typeVal, _ := r.Uint16(IdentSize + 0)
	machineVal, _ := r.Uint16(IdentSize + 2)
	versionVal, _ := r.Uint32(IdentSize + 4)

	return Header{
		Ident:     ident,
		Type:      Type(typeVal),
		Machine:   Machine(machineVal),
		Version:   Version(versionVal),
		Entry:     raw.entry(),
		PhOffset:  raw.phOffset(),
		ShOffset:  raw.shOffset(),
		Flags:     raw.flags(),
		EhSize:    raw.ehSize(),
		PhEntSize: raw.phEntSize(),
		PhNum:     raw.phNum(),
		ShEntSize: raw.shEntSize(),
		ShNum:     raw.shNum(),
		ShStrNdx:  raw.shStrNdx(),
	}
}

// parseHeaderWithClass decodes span's header fields under an explicitly
// supplied class and endianness, without sniffing or even requiring an
// ident prefix. This is the from-scratch construction mode: an image being
// assembled fragment by fragment may not yet carry a self-describing ident
// at all, so the caller who already knows the target class/endian supplies
// it directly.
func parseHeaderWithClass(span []byte, class Class, order Endian) Header {
	ident := Ident{Magic: Magic, Class: class, Endian: order, Version: IdentVersionCurrent}
	if len(span) >= IdentSize {
		ident.ABI = ABI(span[7])
	}
	return decodeHeader(span, ident)
}

// Valid reports whether the header's own fields are internally consistent:
// a recognised ident, current format version, and an advertised header size
// matching the class it claims.
func (h Header) Valid() bool {
	if !h.Ident.Valid() || h.Version != VersionCurrent {
		return false
	}
	switch h.Ident.Class {
	case Class32:
		return int(h.EhSize) == HeaderSize32
	case Class64:
		return int(h.EhSize) == HeaderSize64
	default:
		return false
	}
}
