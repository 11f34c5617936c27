package syntax

// Static grammar tables consumed by the parser.

// Binary operator precedence, higher binds tighter.
// All binary operators are left-associative.
const (
	precNone = iota
	precOrOr
	precAndAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
)

var precedence = [tokenCount]int{
	_OrOr:   precOrOr,
	_AndAnd: precAndAnd,
	_Eql:    precEquality,
	_Neq:    precEquality,
	_Lss:    precRelational,
	_Leq:    precRelational,
	_Gtr:    precRelational,
	_Geq:    precRelational,
	_Add:    precAdditive,
	_Sub:    precAdditive,
	_Mul:    precMultiplicative,
	_Div:    precMultiplicative,
	_Mod:    precMultiplicative,
}

// Precedence returns the binary operator precedence of t, or 0 if t is
// not a binary operator.
func (t Token) Precedence() int {
	if t < tokenCount {
		return precedence[t]
	}
	return precNone
}

// IsTypeKeyword reports whether t names a type (int, char or void).
func (t Token) IsTypeKeyword() bool {
	return t == _Int || t == _Char || t == _Void
}

// IsVarType reports whether t may declare a variable or parameter.
// void is only valid as a function result.
func (t Token) IsVarType() bool {
	return t == _Int || t == _Char
}

// stmtStarters are the tokens that unambiguously begin a block item.
// A missing terminator is tolerated only in front of one of these.
var stmtStarters = [tokenCount]bool{
	_Int:    true,
	_Char:   true,
	_Void:   true,
	_If:     true,
	_While:  true,
	_For:    true,
	_Return: true,
	_Name:   true,
	_Lbrace: true,
	_Semi:   true,
}

// canStartStmt reports whether t can begin a new statement or declaration.
func canStartStmt(t Token) bool {
	return t < tokenCount && stmtStarters[t]
}

// canEndBlock reports whether t closes the construct enclosing a statement.
func canEndBlock(t Token, top bool) bool {
	if top {
		return t == _EOF || t == _Directive
	}
	return t == _Rbrace
}
