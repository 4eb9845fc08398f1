// Package logging provides a scope-gated logging hook shared by the other
// internal packages. It holds no process-wide state: callers opt in by
// passing a Hook into a package's construction options.
package logging

import "fmt"

// Scopes is a bitmask selecting which subsystems a Hook should receive
// records from.
type Scopes uint32

const (
	ScopeLexer Scopes = 1 << iota
	ScopeSymbolTable
	ScopeELF

	ScopeNone = Scopes(0)
	ScopeAll  = Scopes(0xffffffff)
)

// IsEnabled returns true if scope (or any scope in a group) is enabled.
func (s Scopes) IsEnabled(scope Scopes) bool {
	return s&scope != 0
}

// String implements fmt.Stringer.
func (s Scopes) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeAll:
		return "all"
	case ScopeLexer:
		return "lexer"
	case ScopeSymbolTable:
		return "symtab"
	case ScopeELF:
		return "elf"
	default:
		return fmt.Sprintf("<scopes=%#x>", uint32(s))
	}
}

// Hook receives a single log record. format/args follow fmt.Sprintf
// conventions.
type Hook func(scope Scopes, format string, args ...any)

// Nop is the default Hook: it discards everything.
func Nop(Scopes, string, ...any) {}

// Gated wraps a Hook so records for scopes not in enabled are dropped before
// the hook is invoked at all, avoiding formatting cost on the common path.
func Gated(enabled Scopes, hook Hook) Hook {
	if hook == nil {
		hook = Nop
	}
	return func(scope Scopes, format string, args ...any) {
		if !enabled.IsEnabled(scope) {
			return
		}
		hook(scope, format, args...)
	}
}
