package lexer

import "github.com/mangrove-lang/mangrove/internal/token"

// classifyWord maps an already-scanned identifier run to its keyword kind,
// or to Ident if it isn't a keyword. The returned value is what the token
// carries: keywords keep their spelling except the three logical-not/and/or
// words, which report the corresponding operator symbol the parser expects.
//
// isLocationSpec and isStorageSpec aren't derivable from the retrieved
// grammar (their call sites exist upstream of this port but their keyword
// lists were never recovered); static/thread_local and const/var are this
// port's own reasonable choice, recorded as such rather than invented
// silently.
func classifyWord(word string) (token.Kind, string) {
	switch word {
	case "true", "false":
		return token.BoolLit, word
	case "nullptr":
		return token.NullptrLit, word
	case "and":
		return token.LogicOp, "&"
	case "or":
		return token.LogicOp, "|"
	case "not":
		return token.LogicOp, "!"
	case "static", "thread_local":
		return token.LocationSpec, word
	case "const", "var":
		return token.StorageSpec, word
	case "new":
		return token.NewStmt, word
	case "delete":
		return token.DeleteStmt, word
	case "from":
		return token.FromStmt, word
	case "import":
		return token.ImportStmt, word
	case "as":
		return token.AsStmt, word
	case "return":
		return token.ReturnStmt, word
	case "if":
		return token.IfStmt, word
	case "elif":
		return token.ElifStmt, word
	case "else":
		return token.ElseStmt, word
	case "for":
		return token.ForStmt, word
	case "while":
		return token.WhileStmt, word
	case "do":
		return token.DoStmt, word
	case "none":
		return token.NoneType, word
	case "class":
		return token.ClassDef, word
	case "enum":
		return token.EnumDef, word
	case "function":
		return token.FunctionDef, word
	case "operator":
		return token.OperatorDef, word
	case "public", "private", "protected":
		return token.Visibility, word
	case "unsafe":
		return token.Unsafe, word
	default:
		return token.Ident, word
	}
}
