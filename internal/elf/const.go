// Package elf implements an endian-aware, 32/64-bit-dispatching reader over
// an ELF object file's byte span: header, program headers, section headers,
// symbol table, and string table. It reads only; there is no writer,
// linker, or relocation resolver here.
package elf

import "github.com/mangrove-lang/mangrove/internal/flagset"

// Class selects the 32-bit or 64-bit physical layout.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

// Endian selects the byte order multi-byte fields are read with.
type Endian uint8

const (
	LittleEndian Endian = 1
	BigEndian    Endian = 2
)

// IdentVersion is the ELF identification version byte; only 1 ("current")
// is defined.
type IdentVersion uint8

const IdentVersionCurrent IdentVersion = 1

// ABI identifies the target OS/ABI.
type ABI uint8

const (
	ABISystemV       ABI = 0x00
	ABIHPUX          ABI = 0x01
	ABINetBSD        ABI = 0x02
	ABILinux         ABI = 0x03
	ABIGNUHurd       ABI = 0x04
	ABISolaris       ABI = 0x06
	ABIAIX           ABI = 0x07
	ABIIRIX          ABI = 0x08
	ABIFreeBSD       ABI = 0x09
	ABITru64         ABI = 0x0A
	ABINovelModesto  ABI = 0x0B
	ABIOpenBSD       ABI = 0x0C
	ABIOpenVMS       ABI = 0x0D
	ABINonStopKernel ABI = 0x0E
	ABIAros          ABI = 0x0F
	ABIFenixOS       ABI = 0x10
	ABICloudABI      ABI = 0x11
	ABISortix        ABI = 0x53
	ABIPic           ABI = 0x82
)

// Type is the ELF object type (ET_*).
type Type uint16

const (
	TypeUnknown     Type = 0
	TypeRelocatable Type = 1
	TypeExecutable  Type = 2
	TypeShared      Type = 3
	TypeCore        Type = 4
)

// Machine is the target instruction set architecture (EM_*).
type Machine uint16

const (
	MachineNonSpecific Machine = 0x0000
	MachineSparc       Machine = 0x0002
	MachineX86         Machine = 0x0003
	MachineMips        Machine = 0x0008
	MachinePowerPC     Machine = 0x0014
	MachineS390        Machine = 0x0016
	MachineArm         Machine = 0x0028
	MachineSuperH      Machine = 0x002A
	MachineIA64        Machine = 0x0032
	MachineX86_64      Machine = 0x003E
	MachineAArch64     Machine = 0x00B7
	MachinePic         Machine = 0x00CC
	MachineRiscV       Machine = 0x00F3
)

// Version is the ELF format version; only 1 ("current") is defined.
type Version uint32

const VersionCurrent Version = 1

// ProgramType is a program header's segment type (PT_*).
type ProgramType uint32

const (
	ProgramTypeEmpty   ProgramType = 0x00000000
	ProgramTypeLoad    ProgramType = 0x00000001
	ProgramTypeDynamic ProgramType = 0x00000002
	ProgramTypeInterp  ProgramType = 0x00000003
	ProgramTypeNote    ProgramType = 0x00000004
	ProgramTypeShlib   ProgramType = 0x00000005
	ProgramTypePhdr    ProgramType = 0x00000006
)

// SectionType is a section header's type (SHT_*).
type SectionType uint32

const (
	SectionTypeEmpty            SectionType = 0x00000000
	SectionTypeProgram          SectionType = 0x00000001
	SectionTypeSymbolTable      SectionType = 0x00000002
	SectionTypeStringTable      SectionType = 0x00000003
	SectionTypeRelocAddend      SectionType = 0x00000004
	SectionTypeSymbolHash       SectionType = 0x00000005
	SectionTypeDynamic          SectionType = 0x00000006
	SectionTypeNote             SectionType = 0x00000007
	SectionTypeBSS              SectionType = 0x00000008
	SectionTypeReloc            SectionType = 0x00000009
	SectionTypeReserved         SectionType = 0x0000000A
	SectionTypeDynamicSymbols   SectionType = 0x0000000B
	SectionTypeInitArray        SectionType = 0x0000000E
	SectionTypeFiniArray        SectionType = 0x0000000F
	SectionTypePreInitArray     SectionType = 0x00000010
	SectionTypeGroup            SectionType = 0x00000011
	SectionTypeSymbolTableIndex SectionType = 0x00000012
	SectionTypeNumberOfTypes    SectionType = 0x00000013
)

// SectionFlag is a section header's flag bit pattern (SHF_*). Unlike
// symtab.SymbolTypes, these enumerators are already literal bit masks, so
// they compose with flagset.RawFlags (plain OR), not flagset.BitFlags.
type SectionFlag uint64

const (
	SectionFlagWriteable       SectionFlag = 0x00000001
	SectionFlagAllocate        SectionFlag = 0x00000002
	SectionFlagExecutable      SectionFlag = 0x00000004
	SectionFlagMerge           SectionFlag = 0x00000010
	SectionFlagStrings         SectionFlag = 0x00000020
	SectionFlagInfoLink        SectionFlag = 0x00000040
	SectionFlagLinkOrder       SectionFlag = 0x00000080
	SectionFlagOSNonConforming SectionFlag = 0x00000100
	SectionFlagGroup           SectionFlag = 0x00000200
	SectionFlagTLS             SectionFlag = 0x00000400
	SectionFlagOSMask          SectionFlag = 0x0FF00000
	SectionFlagProcessorMask   SectionFlag = 0xF0000000
	SectionFlagSolOrdered      SectionFlag = 0x04000000
	SectionFlagSolExclude      SectionFlag = 0x08000000
)

// SectionFlags is a bag of SectionFlag bits.
type SectionFlags = flagset.RawFlags[SectionFlag]

// Byte-size constants for the ident prefix and each physical layout.
const (
	IdentSize = 16

	HeaderSize32 = IdentSize + 36
	HeaderSize64 = IdentSize + 48

	ProgramHeaderSize32 = 32
	ProgramHeaderSize64 = 56

	SectionHeaderSize32 = 40
	SectionHeaderSize64 = 64

	SymbolSize32 = 16
	SymbolSize64 = 24
)

// Magic is the fixed 4-byte ELF magic number.
var Magic = [4]byte{0x7F, 'E', 'L', 'F'}
