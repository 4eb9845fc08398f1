// Package flagset provides two generic flag-composition helpers that the
// original tooling kept deliberately distinct: one for enumerations whose
// values are bit indices, one for enumerations whose values are already
// bit-literal masks. Mixing the two up silently corrupts the flag set, so
// they are separate types rather than one "smart" flag type.
package flagset

// BitFlags composes flags from an enumeration whose values are bit indices
// (0, 1, 2, ...), shifting each value into its own bit.
type BitFlags[Enum ~uint32 | ~uint64 | ~int] uint64

// Set returns a copy of f with bit-index e set.
func (f BitFlags[Enum]) Set(e Enum) BitFlags[Enum] {
	return f | (1 << uint64(e))
}

// Has reports whether bit-index e is set.
func (f BitFlags[Enum]) Has(e Enum) bool {
	return f&(1<<uint64(e)) != 0
}

// Without returns a copy of f with bit-index e cleared.
func (f BitFlags[Enum]) Without(e Enum) BitFlags[Enum] {
	return f &^ (1 << uint64(e))
}

// Includes reports whether every set bit in other is also set in f.
func (f BitFlags[Enum]) Includes(other BitFlags[Enum]) bool {
	return f&other == other
}

// RawFlags composes flags from an enumeration whose values are already
// bit-literal masks, OR-ing them together directly with no shift.
type RawFlags[Enum ~uint32 | ~uint64] uint64

// Set returns a copy of f with flag bit-pattern e OR'd in.
func (f RawFlags[Enum]) Set(e Enum) RawFlags[Enum] {
	return f | RawFlags[Enum](e)
}

// Has reports whether all bits of flag bit-pattern e are set.
func (f RawFlags[Enum]) Has(e Enum) bool {
	return uint64(f)&uint64(e) == uint64(e)
}
