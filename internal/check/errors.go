package check

import (
	"fmt"

	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Code classifies a diagnostic.
type Code uint8

const (
	_ Code = iota
	LexError
	SyntaxError
	DuplicateDeclaration
	UndeclaredIdentifier
	ArityMismatch
)

var codeNames = [...]string{
	LexError:             "LexError",
	SyntaxError:          "SyntaxError",
	DuplicateDeclaration: "DuplicateDeclaration",
	UndeclaredIdentifier: "UndeclaredIdentifier",
	ArityMismatch:        "ArityMismatch",
}

func (c Code) String() string {
	if c > 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsSemantic reports whether c is produced by the checker rather than the
// scanner or parser.
func (c Code) IsSemantic() bool {
	return c >= DuplicateDeclaration && c <= ArityMismatch
}

// SemanticError reports a violation of the language's static rules.
type SemanticError struct {
	Pos  syntax.Pos
	Code Code   // DuplicateDeclaration, UndeclaredIdentifier or ArityMismatch
	Name string // the offending identifier
	Msg  string
}

// Error implements the error interface.
func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// errorf records a semantic error. Only the first one is kept; the
// checker stops descending once it is set.
func (c *Checker) errorf(code Code, pos syntax.Pos, name, format string, args ...interface{}) {
	if c.err != nil {
		return
	}
	c.err = &SemanticError{
		Pos:  pos,
		Code: code,
		Name: name,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// failed reports whether an error has been recorded.
func (c *Checker) failed() bool {
	return c.err != nil
}
