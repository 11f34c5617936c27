// Package syntax implements lexical and syntactic analysis for FC, a small
// C-like instructional language.
package syntax

import (
	"fmt"
	"strconv"
)

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF       Token = iota // end of input
	_Error                  // lexical error; see Scanner.Err
	_Directive              // #include line

	// Literals
	_Name    // identifier: limit, isPrime
	_Literal // literal value (used with LitKind)

	// Operators
	_Assign // =

	_OrOr   // ||
	_AndAnd // &&

	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	_Add // +
	_Sub // -
	_Mul // *
	_Div // /

	_Not // !

	// Punctuation
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Char
	_Else
	_For
	_If
	_Int
	_Mod
	_Return
	_Void
	_While

	tokenCount
)

var tokenNames = [...]string{
	_EOF:       "EOF",
	_Error:     "ERROR",
	_Directive: "DIRECTIVE",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Char:   "char",
	_Else:   "else",
	_For:    "for",
	_If:     "if",
	_Int:    "int",
	_Mod:    "mod",
	_Return: "return",
	_Void:   "void",
	_While:  "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Char && t <= _While
}

// IsOperator reports whether t is an operator token.
// The modulo keyword is both a keyword and an operator.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not || t == _Mod
}

// IsPunct reports whether t is a punctuation token.
func (t Token) IsPunct() bool {
	return t >= _Lparen && t <= _Semi
}

// IsEOF reports whether t is the end-of-input token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported operator tokens for the checker and tests.
const (
	Not Token = _Not
	Sub Token = _Sub
	Mod Token = _Mod

	Int  Token = _Int
	Char Token = _Char
	Void Token = _Void
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 42
	StringLit                // "%d"
	CharLit                  // 'a'
)

var litKindNames = [...]string{
	IntLit:    "int",
	StringLit: "string",
	CharLit:   "char",
}

func (k LitKind) String() string {
	if k <= CharLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Class is the coarse category of a token, as reported to tools.
type Class uint8

const (
	ClassEOF Class = iota
	ClassError
	ClassDirective
	ClassKeyword
	ClassIdent
	ClassIntLit
	ClassStringLit
	ClassCharLit
	ClassOperator
	ClassPunct
)

var classNames = [...]string{
	ClassEOF:       "end-of-input",
	ClassError:     "error",
	ClassDirective: "directive",
	ClassKeyword:   "keyword",
	ClassIdent:     "identifier",
	ClassIntLit:    "integer-literal",
	ClassStringLit: "string-literal",
	ClassCharLit:   "char-literal",
	ClassOperator:  "operator",
	ClassPunct:     "punctuation",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", c)
}

// Item is one scanned token: its type, literal kind, text and position.
// Items are values and are never modified after the Scanner produces them.
type Item struct {
	Tok  Token
	Kind LitKind // only meaningful when Tok is a literal
	Lit  string  // lexeme; decoded content for string and char literals
	Pos  Pos
}

// Class returns the item's token class.
func (it Item) Class() Class {
	switch {
	case it.Tok == _EOF:
		return ClassEOF
	case it.Tok == _Error:
		return ClassError
	case it.Tok == _Directive:
		return ClassDirective
	case it.Tok == _Name:
		return ClassIdent
	case it.Tok == _Literal:
		switch it.Kind {
		case StringLit:
			return ClassStringLit
		case CharLit:
			return ClassCharLit
		}
		return ClassIntLit
	case it.Tok == _Mod:
		return ClassOperator
	case it.Tok.IsKeyword():
		return ClassKeyword
	case it.Tok.IsOperator():
		return ClassOperator
	}
	return ClassPunct
}

// String describes the item the way diagnostics name what was found.
func (it Item) String() string {
	switch it.Tok {
	case _EOF:
		return "end of input"
	case _Name:
		return "identifier " + it.Lit
	case _Directive:
		return "#include " + it.Lit
	case _Literal:
		switch it.Kind {
		case StringLit:
			return strconv.Quote(it.Lit)
		case CharLit:
			return strconv.QuoteRune([]rune(it.Lit)[0])
		}
		return it.Lit
	}
	return strconv.Quote(it.Tok.String())
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"char":   _Char,
	"else":   _Else,
	"for":    _For,
	"if":     _If,
	"int":    _Int,
	"mod":    _Mod,
	"return": _Return,
	"void":   _Void,
	"while":  _While,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
