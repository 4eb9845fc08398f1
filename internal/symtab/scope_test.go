package symtab

import (
	"testing"

	"github.com/mangrove-lang/mangrove/internal/utf8"
	"github.com/stretchr/testify/require"
)

func TestInsertThenFindLocal(t *testing.T) {
	root := NewRoot()
	require.True(t, root.Insert(str("x"), TypeOf(Type, Bool)))

	sym, ok := root.FindLocal("x")
	require.True(t, ok)
	require.Equal(t, "x", sym.Identifier().String())
}

func TestInsertDuplicateFails(t *testing.T) {
	root := NewRoot()
	require.True(t, root.Insert(str("x"), TypeOf(Bool)))
	require.False(t, root.Insert(str("x"), TypeOf(Bool)))
}

func TestInsertEmptyIdentifierFails(t *testing.T) {
	root := NewRoot()
	require.False(t, root.Insert(utf8.NewString(nil), TypeOf(Bool)))
}

func TestFindWalksAncestors(t *testing.T) {
	root := NewRoot()
	require.True(t, root.Insert(str("x"), TypeOf(Type, Bool)))

	child := NewChild(root)
	grandchild := NewChild(child)

	sym, ok := grandchild.Find("x")
	require.True(t, ok)
	require.Equal(t, "x", sym.Identifier().String())

	_, ok = grandchild.FindLocal("x")
	require.False(t, ok, "FindLocal must not see ancestor bindings")
}

func TestFindPrefersInnermostBinding(t *testing.T) {
	root := NewRoot()
	require.True(t, root.Insert(str("x"), TypeOf(Type, Int32)))

	child := NewChild(root)
	require.True(t, child.Insert(str("x"), TypeOf(Type, Bool)))

	sym, ok := child.Find("x")
	require.True(t, ok)
	require.True(t, sym.Type().Has(Bool))
}

func TestPopReturnsParentWhileLive(t *testing.T) {
	root := NewRoot()
	child := NewChild(root)
	require.Same(t, root, child.Pop())
}

func TestPopIsNoOpOnDeadParent(t *testing.T) {
	root := NewRoot()
	child := NewChild(root)
	root.Release()

	require.Same(t, child, child.Pop())
	_, ok := child.Find("anything")
	require.False(t, ok, "a released parent must not be searched")
}

func TestSizeAndEmpty(t *testing.T) {
	root := NewRoot()
	require.True(t, root.Empty())
	require.Equal(t, 0, root.Size())

	require.True(t, root.Insert(str("x"), TypeOf(Bool)))
	require.False(t, root.Empty())
	require.Equal(t, 1, root.Size())
}

func TestInstallBuiltinTypes(t *testing.T) {
	root := NewRoot()
	require.True(t, InstallBuiltinTypes(root))

	boolSym, ok := root.FindLocal("Bool")
	require.True(t, ok)
	require.True(t, boolSym.IsType())
	require.Equal(t, "Bool", boolSym.Type().String())

	stringSym, ok := root.FindLocal("String")
	require.True(t, ok)
	require.Equal(t, "String", stringSym.Type().String())

	uint64Sym, ok := root.FindLocal("UInt64")
	require.True(t, ok)
	require.Equal(t, "UInt64", uint64Sym.Type().String())

	// Re-installing into the same (non-empty) scope must fail outright.
	require.False(t, InstallBuiltinTypes(root))
}
