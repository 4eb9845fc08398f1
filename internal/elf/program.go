package elf

import "github.com/mangrove-lang/mangrove/internal/flagset"

// ProgramFlag is a program header's segment permission bit (PF_*).
type ProgramFlag uint32

const (
	ProgramFlagExecutable ProgramFlag = 0x1
	ProgramFlagWriteable  ProgramFlag = 0x2
	ProgramFlagReadable   ProgramFlag = 0x4
)

// ProgramFlags is a bag of ProgramFlag bits.
type ProgramFlags = flagset.RawFlags[ProgramFlag]

type rawProgramHeader interface {
	pType() uint32
	pFlags() uint32
	pOffset() uint64
	pVAddr() uint64
	pPAddr() uint64
	pFileSz() uint64
	pMemSz() uint64
	pAlign() uint64
}

type elf32ProgramHeader struct{ r Reader }

func (h elf32ProgramHeader) pType() uint32   { v, _ := h.r.Uint32(0); return v }
func (h elf32ProgramHeader) pOffset() uint64 { v, _ := h.r.Uint32(4); return uint64(v) }
func (h elf32ProgramHeader) pVAddr() uint64  { v, _ := h.r.Uint32(8); return uint64(v) }
func (h elf32ProgramHeader) pPAddr() uint64  { v, _ := h.r.Uint32(12); return uint64(v) }
func (h elf32ProgramHeader) pFileSz() uint64 { v, _ := h.r.Uint32(16); return uint64(v) }
func (h elf32ProgramHeader) pMemSz() uint64  { v, _ := h.r.Uint32(20); return uint64(v) }
func (h elf32ProgramHeader) pFlags() uint32  { v, _ := h.r.Uint32(24); return v }
func (h elf32ProgramHeader) pAlign() uint64  { v, _ := h.r.Uint32(28); return uint64(v) }

type elf64ProgramHeader struct{ r Reader }

func (h elf64ProgramHeader) pType() uint32   { v, _ := h.r.Uint32(0); return v }
func (h elf64ProgramHeader) pFlags() uint32  { v, _ := h.r.Uint32(4); return v }
func (h elf64ProgramHeader) pOffset() uint64 { v, _ := h.r.Uint64(8); return v }
func (h elf64ProgramHeader) pVAddr() uint64  { v, _ := h.r.Uint64(16); return v }
func (h elf64ProgramHeader) pPAddr() uint64  { v, _ := h.r.Uint64(24); return v }
func (h elf64ProgramHeader) pFileSz() uint64 { v, _ := h.r.Uint64(32); return v }
func (h elf64ProgramHeader) pMemSz() uint64  { v, _ := h.r.Uint64(40); return v }
func (h elf64ProgramHeader) pAlign() uint64  { v, _ := h.r.Uint64(48); return v }

// ProgramHeader is the unified logical view of a program header (segment
// descriptor), offsets and addresses widened to uint64 regardless of class.
type ProgramHeader struct {
	Type   ProgramType
	Flags  ProgramFlags
	Offset uint64
	VAddr  uint64
	PAddr  uint64
	FileSz uint64
	MemSz  uint64
	Align  uint64
}

// parseProgramHeader reads one program header entry out of span, which must
// be exactly ProgramHeaderSize32/64 bytes for the given class.
func parseProgramHeader(span []byte, class Class, order Endian) (ProgramHeader, error) {
	r := NewReader(span, order)
	var raw rawProgramHeader
	switch class {
	case Class32:
		if len(span) < ProgramHeaderSize32 {
			return ProgramHeader{}, ErrTruncated
		}
		raw = elf32ProgramHeader{r: r}
	case Class64:
		if len(span) < ProgramHeaderSize64 {
			return ProgramHeader{}, ErrTruncated
		}
		raw = elf64ProgramHeader{r: r}
	default:
		return ProgramHeader{}, ErrUnsupportedClass
	}
	return ProgramHeader{
		Type:   ProgramType(raw.pType()),
		Flags:  ProgramFlags(raw.pFlags()),
		Offset: raw.pOffset(),
		VAddr:  raw.pVAddr(),
		PAddr:  raw.pPAddr(),
		FileSz: raw.pFileSz(),
		MemSz:  raw.pMemSz(),
		Align:  raw.pAlign(),
	}, nil
}

// ProgramHeaders reads h.PhNum entries of h.PhEntSize bytes each, starting
// at h.PhOffset in span.
func ProgramHeaders(span []byte, h Header) ([]ProgramHeader, error) {
	out := make([]ProgramHeader, 0, h.PhNum)
	for i := uint16(0); i < h.PhNum; i++ {
		start := int(h.PhOffset) + int(i)*int(h.PhEntSize)
		end := start + int(h.PhEntSize)
		if start < 0 || end > len(span) {
			return nil, ErrTruncated
		}
		ph, err := parseProgramHeader(span[start:end], h.Ident.Class, h.Ident.Endian)
		if err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, nil
}
