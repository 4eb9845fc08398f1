package elf

import "errors"

var (
	// ErrTruncated is returned when a span is too short to hold the
	// structure being parsed out of it. A bad magic number, version, or
	// class/endian byte is NOT truncation — those surface through Valid()
	// instead, since the bytes present are still parseable.
	ErrTruncated = errors.New("elf: truncated")
	// ErrUnsupportedClass is returned for an ident class other than 32 or
	// 64 bit.
	ErrUnsupportedClass = errors.New("elf: unsupported class")
	// ErrMisaligned names the condition of a symbol table's span length not
	// being an exact multiple of the symbol entry size for its class. No
	// function in this package returns it; SymbolTable.Valid reports that
	// condition as false.
	ErrMisaligned = errors.New("elf: span length not a multiple of entry size")
)
