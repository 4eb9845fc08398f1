package elf

type rawSectionHeader interface {
	shName() uint32
	shType() uint32
	shFlags() uint64
	shAddr() uint64
	shOffset() uint64
	shSize() uint64
	shLink() uint32
	shInfo() uint32
	shAddrAlign() uint64
	shEntSize() uint64
}

type elf32SectionHeader struct{ r Reader }

func (h elf32SectionHeader) shName() uint32      { v, _ := h.r.Uint32(0); return v }
func (h elf32SectionHeader) shType() uint32      { v, _ := h.r.Uint32(4); return v }
func (h elf32SectionHeader) shFlags() uint64     { v, _ := h.r.Uint32(8); return uint64(v) }
func (h elf32SectionHeader) shAddr() uint64      { v, _ := h.r.Uint32(12); return uint64(v) }
func (h elf32SectionHeader) shOffset() uint64    { v, _ := h.r.Uint32(16); return uint64(v) }
func (h elf32SectionHeader) shSize() uint64      { v, _ := h.r.Uint32(20); return uint64(v) }
func (h elf32SectionHeader) shLink() uint32      { v, _ := h.r.Uint32(24); return v }
func (h elf32SectionHeader) shInfo() uint32      { v, _ := h.r.Uint32(28); return v }
func (h elf32SectionHeader) shAddrAlign() uint64 { v, _ := h.r.Uint32(32); return uint64(v) }
func (h elf32SectionHeader) shEntSize() uint64   { v, _ := h.r.Uint32(36); return uint64(v) }

type elf64SectionHeader struct{ r Reader }

func (h elf64SectionHeader) shName() uint32      { v, _ := h.r.Uint32(0); return v }
func (h elf64SectionHeader) shType() uint32      { v, _ := h.r.Uint32(4); return v }
func (h elf64SectionHeader) shFlags() uint64     { v, _ := h.r.Uint64(8); return v }
func (h elf64SectionHeader) shAddr() uint64      { v, _ := h.r.Uint64(16); return v }
func (h elf64SectionHeader) shOffset() uint64    { v, _ := h.r.Uint64(24); return v }
func (h elf64SectionHeader) shSize() uint64      { v, _ := h.r.Uint64(32); return v }
func (h elf64SectionHeader) shLink() uint32      { v, _ := h.r.Uint32(40); return v }
func (h elf64SectionHeader) shInfo() uint32      { v, _ := h.r.Uint32(44); return v }
func (h elf64SectionHeader) shAddrAlign() uint64 { v, _ := h.r.Uint64(48); return v }
func (h elf64SectionHeader) shEntSize() uint64   { v, _ := h.r.Uint64(56); return v }

// SectionHeader is the unified logical view of a section header.
type SectionHeader struct {
	NameOffset uint32
	Type       SectionType
	Flags      SectionFlags
	Addr       uint64
	Offset     uint64
	Size       uint64
	Link       uint32
	Info       uint32
	AddrAlign  uint64
	EntSize    uint64
}

// parseSectionHeader reads one section header entry out of span.
func parseSectionHeader(span []byte, class Class, order Endian) (SectionHeader, error) {
	r := NewReader(span, order)
	var raw rawSectionHeader
	switch class {
	case Class32:
		if len(span) < SectionHeaderSize32 {
			return SectionHeader{}, ErrTruncated
		}
		raw = elf32SectionHeader{r: r}
	case Class64:
		if len(span) < SectionHeaderSize64 {
			return SectionHeader{}, ErrTruncated
		}
		raw = elf64SectionHeader{r: r}
	default:
		return SectionHeader{}, ErrUnsupportedClass
	}
	return SectionHeader{
		NameOffset: raw.shName(),
		Type:       SectionType(raw.shType()),
		Flags:      SectionFlags(raw.shFlags()),
		Addr:       raw.shAddr(),
		Offset:     raw.shOffset(),
		Size:       raw.shSize(),
		Link:       raw.shLink(),
		Info:       raw.shInfo(),
		AddrAlign:  raw.shAddrAlign(),
		EntSize:    raw.shEntSize(),
	}, nil
}

// SectionHeaders reads h.ShNum entries of h.ShEntSize bytes each, starting
// at h.ShOffset in span.
func SectionHeaders(span []byte, h Header) ([]SectionHeader, error) {
	out := make([]SectionHeader, 0, h.ShNum)
	for i := uint16(0); i < h.ShNum; i++ {
		start := int(h.ShOffset) + int(i)*int(h.ShEntSize)
		end := start + int(h.ShEntSize)
		if start < 0 || end > len(span) {
			return nil, ErrTruncated
		}
		sh, err := parseSectionHeader(span[start:end], h.Ident.Class, h.Ident.Endian)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, nil
}
