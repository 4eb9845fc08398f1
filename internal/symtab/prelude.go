package symtab

import "github.com/mangrove-lang/mangrove/internal/utf8"

func str(s string) utf8.String { return utf8.NewString([]byte(s)) }

type preludeEntry struct {
	name string
	typ  SymbolType
}

func intPrelude(name string, width SymbolTypes, unsigned bool) preludeEntry {
	bits := []SymbolTypes{Type}
	if width != 0 {
		bits = append(bits, width)
	}
	if unsigned {
		bits = append(bits, Unsigned)
	}
	return preludeEntry{name: name, typ: TypeOf(bits...)}
}

func preludeEntries() []preludeEntry {
	entries := []preludeEntry{
		{"type", TypeOf(Type)},
		{"none", TypeOf(Type, None)},
		{"auto", TypeOf(Type, Auto)},
		{"Bool", TypeOf(Type, Bool)},
		intPrelude("Int8", 0, false),
		intPrelude("Int16", Int16, false),
		intPrelude("Int32", Int32, false),
		intPrelude("Int64", Int64, false),
		intPrelude("UInt8", 0, true),
		intPrelude("UInt16", Int16, true),
		intPrelude("UInt32", Int32, true),
		intPrelude("UInt64", Int64, true),
		{"Char", TypeOf(Type, Character)},
		{"String", TypeOf(Type, Character, List)},
		{"List", TypeOf(Type, List)},
		{"Array", TypeOf(Type, Array)},
		{"Dict", TypeOf(Type, Struct, List)},
		{"Set", TypeOf(Type, Struct, Array)},
	}
	return entries
}

// InstallBuiltinTypes installs the built-in type prelude into root. It
// returns false if any entry failed to insert, mirroring the original's "AND
// all insert results" contract: a partial prelude is fatal to construction.
func InstallBuiltinTypes(root *Scope) bool {
	ok := true
	for _, entry := range preludeEntries() {
		if !root.Insert(str(entry.name), entry.typ) {
			ok = false
		}
	}
	return ok
}
