// Package symtab implements the lexically nested symbol-table scope chain:
// a tree of scopes, each owning its own bindings, with a non-owning
// (weak) link to its parent so that popping a scope can detect a parent
// that has already been released.
package symtab

import (
	"github.com/mangrove-lang/mangrove/internal/logging"
	"github.com/mangrove-lang/mangrove/internal/utf8"
)

// Option configures a Scope at construction.
type Option func(*Scope)

// WithLogHook routes a Scope's diagnostic records through hook.
func WithLogHook(hook logging.Hook) Option {
	return func(s *Scope) { s.hook = hook }
}

// Scope is a single lexical symbol table, optionally chained to a parent.
// The parent link is weak: it survives only until the parent calls Release,
// at which point Pop and Find stop walking into it.
type Scope struct {
	table    map[string]Symbol
	parent   *Scope
	released *bool
	hook     logging.Hook
}

// NewRoot creates a scope with no parent.
func NewRoot(opts ...Option) *Scope {
	s := &Scope{table: make(map[string]Symbol), released: new(bool), hook: logging.Nop}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewChild creates a scope whose parent is parent. The parent link is weak:
// it is followed by Find/Pop only until parent.Release is called.
func NewChild(parent *Scope, opts ...Option) *Scope {
	released := false
	s := &Scope{
		table:    make(map[string]Symbol),
		parent:   parent,
		released: &released,
		hook:     logging.Nop,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Release marks s as no longer reachable through any weak parent link held
// by a child. It does not affect s's own bindings or its own parent link.
func (s *Scope) Release() {
	if s.released != nil {
		*s.released = true
	}
}

func (s *Scope) parentLive() *Scope {
	if s.parent == nil || (s.parent.released != nil && *s.parent.released) {
		return nil
	}
	return s.parent
}

// Pop returns the scope that should become "current" after leaving s: the
// parent, if it is still live, or s itself if the parent has been released
// (a no-op pop, per DeadParentScope semantics).
func (s *Scope) Pop() *Scope {
	if parent := s.parentLive(); parent != nil {
		return parent
	}
	if s.parent != nil {
		s.hook(logging.ScopeSymbolTable, "pop: parent scope already released, staying in place")
	}
	return s
}

// Insert binds identifier to typ in s. It fails if identifier is empty or
// already bound locally; it does not check ancestor scopes.
func (s *Scope) Insert(identifier utf8.String, typ SymbolType) bool {
	if identifier.Len() == 0 {
		return false
	}
	key := identifier.String()
	if _, exists := s.table[key]; exists {
		s.hook(logging.ScopeSymbolTable, "insert: %q already bound in this scope", key)
		return false
	}
	s.table[key] = NewSymbol(identifier, typ)
	return true
}

// FindLocal searches only s's own bindings.
func (s *Scope) FindLocal(identifier string) (Symbol, bool) {
	sym, ok := s.table[identifier]
	return sym, ok
}

// Find searches s, then walks live parents, returning the innermost match.
func (s *Scope) Find(identifier string) (Symbol, bool) {
	if sym, ok := s.FindLocal(identifier); ok {
		return sym, true
	}
	if parent := s.parentLive(); parent != nil {
		return parent.Find(identifier)
	}
	return Symbol{}, false
}

// Size returns the number of bindings local to s.
func (s *Scope) Size() int { return len(s.table) }

// Empty reports whether s has no local bindings.
func (s *Scope) Empty() bool { return len(s.table) == 0 }
