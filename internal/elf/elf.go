package elf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mangrove-lang/mangrove/internal/logging"
)

// ELF is a parsed view over an object file's bytes: the header, and lazily
// resolved program/section tables. It owns no file descriptor; NewELF reads
// everything it needs up front from the given io.ReaderAt and keeps only
// the resulting byte slice, so a *os.File can be closed by its caller right
// after construction.
type ELF struct {
	data   []byte
	header Header
	log    logging.Hook
}

// Option configures an ELF constructor.
type Option func(*elfOptions)

type elfOptions struct {
	log            logging.Hook
	overrideClass  *Class
	overrideEndian *Endian
}

// WithLogHook routes ELF construction diagnostics through hook.
func WithLogHook(hook logging.Hook) Option {
	return func(o *elfOptions) { o.log = hook }
}

// WithClassEndian supplies the class and endianness to parse with directly,
// skipping ident-sniffing entirely. This is for the from-scratch
// construction path (NewFromFragments): an image being assembled fragment
// by fragment may not yet carry a self-describing ident — or even sixteen
// bytes at all — at the point it needs to be parsed, so the caller who
// already knows the target class/endian supplies it out of band, the way
// the original's scratch constructor took an explicit Class argument
// instead of reading one from bytes.
func WithClassEndian(class Class, endian Endian) Option {
	return func(o *elfOptions) {
		o.overrideClass = &class
		o.overrideEndian = &endian
	}
}

func resolveOptions(opts []Option) elfOptions {
	o := elfOptions{log: logging.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewELF reads an entire ELF object out of r, which must expose exactly
// size bytes starting at offset 0. Unlike a streaming format, ELF's
// structures are scattered at header-given offsets, so there's no benefit
// to partial reads; the whole span is materialised once.
func NewELF(r io.ReaderAt, size int64, opts ...Option) (*ELF, error) {
	o := resolveOptions(opts)
	buf := make([]byte, size)
	if _, err := r.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("elf: read: %w", err)
	}
	return newFromBytes(buf, o)
}

// NewFromFragments concatenates fragments into a single buffer and parses
// it exactly as NewELF would. This is the construction mode used by
// tooling that assembles an ELF image from in-memory pieces rather than
// reading one that already exists on disk; both constructors converge on
// the same ELF struct. Pass WithClassEndian when the fragments don't yet
// carry a self-describing ident to parse with.
func NewFromFragments(fragments [][]byte, opts ...Option) (*ELF, error) {
	o := resolveOptions(opts)
	var buf bytes.Buffer
	for _, f := range fragments {
		buf.Write(f)
	}
	return newFromBytes(buf.Bytes(), o)
}

func newFromBytes(data []byte, o elfOptions) (*ELF, error) {
	var header Header
	if o.overrideClass != nil {
		header = parseHeaderWithClass(data, *o.overrideClass, *o.overrideEndian)
	} else {
		h, err := parseHeader(data)
		if err != nil {
			o.log(logging.ScopeELF, "header parse failed: %v", err)
			return nil, err
		}
		header = h
	}
	o.log(logging.ScopeELF, "parsed header: class=%d endian=%d type=%d machine=%d", header.Ident.Class, header.Ident.Endian, header.Type, header.Machine)
	return &ELF{data: data, header: header, log: o.log}, nil
}

// Header returns the parsed ELF header.
func (e *ELF) Header() Header { return e.header }

// Valid reports whether the file's header is internally consistent. It
// does not validate the program or section tables; callers that need those
// validated call ProgramHeaders/SectionHeaders/SymbolTable and check their
// own errors or Valid predicates.
func (e *ELF) Valid() bool { return e.header.Valid() }

// ProgramHeaders reads every program header table entry.
func (e *ELF) ProgramHeaders() ([]ProgramHeader, error) {
	return ProgramHeaders(e.data, e.header)
}

// SectionHeaders reads every section header table entry.
func (e *ELF) SectionHeaders() ([]SectionHeader, error) {
	return SectionHeaders(e.data, e.header)
}

// Section returns the raw byte span a section header describes.
func (e *ELF) Section(sh SectionHeader) ([]byte, error) {
	start := int(sh.Offset)
	end := start + int(sh.Size)
	if sh.Type == SectionTypeBSS || start < 0 || end > len(e.data) {
		if sh.Type == SectionTypeBSS {
			return nil, nil
		}
		return nil, ErrTruncated
	}
	return e.data[start:end], nil
}

// SymbolTable locates the section of type SectionTypeSymbolTable (or
// SectionTypeDynamicSymbols, if preferDynamic is true) and wraps its byte
// span as a SymbolTable. It reports ok=false if no such section exists.
func (e *ELF) SymbolTable(preferDynamic bool) (SymbolTable, bool, error) {
	sections, err := e.SectionHeaders()
	if err != nil {
		return SymbolTable{}, false, err
	}
	want := SectionTypeSymbolTable
	if preferDynamic {
		want = SectionTypeDynamicSymbols
	}
	for _, sh := range sections {
		if sh.Type != want {
			continue
		}
		span, err := e.Section(sh)
		if err != nil {
			return SymbolTable{}, false, err
		}
		return NewSymbolTable(span, e.header.Ident.Class, e.header.Ident.Endian), true, nil
	}
	return SymbolTable{}, false, nil
}

// StringTable locates the section at index idx and wraps its byte span as a
// StringTable — typically e.Header().ShStrNdx for section names, or a
// symbol table's Link field for symbol names.
func (e *ELF) StringTable(idx uint16) (StringTable, error) {
	sections, err := e.SectionHeaders()
	if err != nil {
		return StringTable{}, err
	}
	if int(idx) >= len(sections) {
		return StringTable{}, fmt.Errorf("%w: string table index %d out of range", ErrTruncated, idx)
	}
	span, err := e.Section(sections[idx])
	if err != nil {
		return StringTable{}, err
	}
	return NewStringTable(span), nil
}
