package syntax

import (
	"fmt"
	"strings"
)

// LexError reports a character sequence that does not form a token.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Scanner performs lexical analysis on FC source code.
// It produces tokens on demand; after end of input or the first lexical
// error the current token stays _EOF or _Error respectively.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number, decoded string)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	err *LexError // first lexical error, sticky

	litBuf strings.Builder
}

// NewScanner creates a Scanner reading buf.
func NewScanner(buf *Buffer) *Scanner {
	return &Scanner{source: newSource(buf)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	if s.err != nil {
		s.tok = _Error
		return
	}

redo:
	s.skipWhitespace()
	s.tokPos = s.pos()
	s.lit = ""
	s.kind = IntLit

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case s.ch == '\'':
		s.scanChar()

	case s.ch == '#':
		s.scanDirective()

	case s.ch == '/' && (s.peek() == '/' || s.peek() == '*'):
		if s.skipComment() {
			goto redo
		}

	default:
		s.scanOperator()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token { return s.tok }

// Literal returns the current token's text.
func (s *Scanner) Literal() string { return s.lit }

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind { return s.kind }

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos { return s.tokPos }

// Item returns the current token as an Item value.
func (s *Scanner) Item() Item {
	return Item{Tok: s.tok, Kind: s.kind, Lit: s.lit, Pos: s.tokPos}
}

// Err returns the lexical error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// errorAt records a lexical error and turns the current token into _Error.
func (s *Scanner) errorAt(pos Pos, format string, args ...interface{}) {
	if s.err == nil {
		s.err = &LexError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
	}
	s.tok = _Error
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// skipComment skips a // or /* */ comment starting at s.ch.
// It reports false if the comment is not terminated.
func (s *Scanner) skipComment() bool {
	start := s.pos()
	s.nextch() // '/'
	if s.ch == '/' {
		for s.ch != '\n' && s.ch >= 0 {
			s.nextch()
		}
		return true
	}

	s.nextch() // '*'
	for {
		switch {
		case s.ch < 0:
			s.errorAt(start, "comment not terminated")
			return false
		case s.ch == '*' && s.peek() == '/':
			s.nextch()
			s.nextch()
			return true
		}
		s.nextch()
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a decimal integer literal.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	if isLetter(s.ch) {
		s.errorAt(s.pos(), "invalid character %q in integer literal", s.ch)
		return
	}
	s.lit = s.litBuf.String()
	s.kind = IntLit
	s.tok = _Literal
}

// scanString scans a string literal; the literal is the decoded content.
func (s *Scanner) scanString() {
	start := s.pos()
	s.nextch() // opening "
	s.litBuf.Reset()

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = s.litBuf.String()
			s.kind = StringLit
			s.tok = _Literal
			return

		case s.ch == '\n' || s.ch < 0:
			s.errorAt(start, "string literal not terminated")
			return

		case s.ch == '\\':
			r, ok := s.scanEscape()
			if !ok {
				return
			}
			s.litBuf.WriteRune(r)

		default:
			s.litBuf.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanChar scans a character literal such as 'a' or '\n'.
func (s *Scanner) scanChar() {
	start := s.pos()
	s.nextch() // opening '

	var r rune
	switch {
	case s.ch == '\'':
		s.errorAt(start, "empty character literal")
		return
	case s.ch == '\n' || s.ch < 0:
		s.errorAt(start, "character literal not terminated")
		return
	case s.ch == '\\':
		var ok bool
		if r, ok = s.scanEscape(); !ok {
			return
		}
	default:
		r = s.ch
		s.nextch()
	}

	if s.ch != '\'' {
		s.errorAt(start, "character literal not terminated")
		return
	}
	s.nextch()
	s.lit = string(r)
	s.kind = CharLit
	s.tok = _Literal
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	pos := s.pos()
	s.nextch() // skip \

	var r rune
	switch s.ch {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '0':
		r = 0
	case '\\':
		r = '\\'
	case '\'', '"':
		r = s.ch
	default:
		if s.ch < 0 || s.ch == '\n' {
			s.errorAt(pos, "escape sequence not terminated")
		} else {
			s.errorAt(pos, "unknown escape sequence \\%c", s.ch)
		}
		return 0, false
	}
	s.nextch()
	return r, true
}

// scanDirective scans an include line: #include <file> or #include "file".
// The literal keeps the delimiters so system and local headers stay distinct.
func (s *Scanner) scanDirective() {
	start := s.pos()
	s.nextch() // '#'
	s.skipBlanks()

	s.litBuf.Reset()
	for isLetter(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	if name := s.litBuf.String(); name != "include" {
		s.errorAt(start, "unsupported preprocessor directive #%s", name)
		return
	}
	s.skipBlanks()

	var closing rune
	switch s.ch {
	case '<':
		closing = '>'
	case '"':
		closing = '"'
	default:
		s.errorAt(s.pos(), "expected <file> or \"file\" after #include")
		return
	}

	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
	s.nextch()
	for s.ch != closing {
		if s.ch < 0 || s.ch == '\n' {
			s.errorAt(start, "#include file name not terminated")
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.litBuf.WriteRune(s.ch)
	s.nextch()

	s.skipBlanks()
	if s.ch >= 0 && s.ch != '\n' {
		s.errorAt(s.pos(), "unexpected %q after #include", s.ch)
		return
	}

	s.lit = s.litBuf.String()
	s.tok = _Directive
}

// skipBlanks skips spaces and tabs but stays on the current line.
func (s *Scanner) skipBlanks() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' {
		s.nextch()
	}
}

// scanOperator scans an operator or punctuation mark.
func (s *Scanner) scanOperator() {
	ch := s.ch
	pos := s.pos()
	s.nextch()

	// two-character operators
	switch {
	case ch == '&' && s.ch == '&':
		s.tok = _AndAnd
	case ch == '|' && s.ch == '|':
		s.tok = _OrOr
	case ch == '=' && s.ch == '=':
		s.tok = _Eql
	case ch == '!' && s.ch == '=':
		s.tok = _Neq
	case ch == '<' && s.ch == '=':
		s.tok = _Leq
	case ch == '>' && s.ch == '=':
		s.tok = _Geq
	default:
		goto single
	}
	s.nextch()
	s.lit = s.tok.String()
	return

single:
	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '/':
		s.tok = _Div
	case '<':
		s.tok = _Lss
	case '>':
		s.tok = _Gtr
	case '=':
		s.tok = _Assign
	case '!':
		s.tok = _Not
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	default:
		s.errorAt(pos, "unrecognized character %q", ch)
		return
	}
	s.lit = s.tok.String()
}

// Tokenize scans all of buf and returns its tokens, ending with _EOF.
// On a lexical error it returns the tokens scanned so far and the error.
func Tokenize(buf *Buffer) ([]Item, error) {
	s := NewScanner(buf)
	var items []Item
	for {
		s.Next()
		if s.tok == _Error {
			return items, s.Err()
		}
		items = append(items, s.Item())
		if s.tok == _EOF {
			return items, nil
		}
	}
}
