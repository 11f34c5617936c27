package syntax

import (
	"strings"
	"testing"
)

func scan(src string) *Scanner {
	return NewScanner(NewBuffer("test.c", []byte(src)))
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers
		{"ident", "foo", []Token{_Name, _EOF}, []string{"foo", ""}},
		{"ident_underscore", "_bar", []Token{_Name, _EOF}, []string{"_bar", ""}},
		{"ident_mixed", "isPrime2", []Token{_Name, _EOF}, []string{"isPrime2", ""}},

		// Built-in functions are ordinary identifiers
		{"builtin_printf", "printf", []Token{_Name, _EOF}, []string{"printf", ""}},
		{"builtin_atoi", "atoi", []Token{_Name, _EOF}, []string{"atoi", ""}},

		// Keywords
		{"kw_int", "int", []Token{_Int, _EOF}, []string{"int", ""}},
		{"kw_char", "char", []Token{_Char, _EOF}, []string{"char", ""}},
		{"kw_void", "void", []Token{_Void, _EOF}, []string{"void", ""}},
		{"kw_mod", "mod", []Token{_Mod, _EOF}, []string{"mod", ""}},
		{"kw_control", "if else while for return",
			[]Token{_If, _Else, _While, _For, _Return, _EOF},
			[]string{"if", "else", "while", "for", "return", ""}},
		{"kw_prefix_is_ident", "integer modulo", []Token{_Name, _Name, _EOF}, []string{"integer", "modulo", ""}},

		// Integer literals
		{"int_dec", "123", []Token{_Literal, _EOF}, []string{"123", ""}},
		{"int_zero", "0", []Token{_Literal, _EOF}, []string{"0", ""}},
		{"int_leading_zero", "007", []Token{_Literal, _EOF}, []string{"007", ""}},

		// String literals (decoded content)
		{"string_simple", `"hello"`, []Token{_Literal, _EOF}, []string{"hello", ""}},
		{"string_empty", `""`, []Token{_Literal, _EOF}, []string{"", ""}},
		{"string_format", `"%d\n"`, []Token{_Literal, _EOF}, []string{"%d\n", ""}},
		{"string_escape_t", `"a\tb"`, []Token{_Literal, _EOF}, []string{"a\tb", ""}},
		{"string_escape_quote", `"a\"b"`, []Token{_Literal, _EOF}, []string{"a\"b", ""}},
		{"string_escape_zero", `"a\0b"`, []Token{_Literal, _EOF}, []string{"a\x00b", ""}},

		// Character literals
		{"char_simple", `'a'`, []Token{_Literal, _EOF}, []string{"a", ""}},
		{"char_escape", `'\n'`, []Token{_Literal, _EOF}, []string{"\n", ""}},
		{"char_quote", `'\''`, []Token{_Literal, _EOF}, []string{"'", ""}},

		// Directives
		{"include_system", "#include <stdio.h>", []Token{_Directive, _EOF}, []string{"<stdio.h>", ""}},
		{"include_local", `#include "util.h"`, []Token{_Directive, _EOF}, []string{`"util.h"`, ""}},
		{"include_spaced", "#  include\t<stdlib.h>  \nint", []Token{_Directive, _Int, _EOF}, []string{"<stdlib.h>", "int", ""}},

		// Operators
		{"op_assign", "=", []Token{_Assign, _EOF}, []string{"=", ""}},
		{"op_two_char", "== != <= >= && ||",
			[]Token{_Eql, _Neq, _Leq, _Geq, _AndAnd, _OrOr, _EOF},
			[]string{"==", "!=", "<=", ">=", "&&", "||", ""}},
		{"op_one_char", "+ - * / < > !",
			[]Token{_Add, _Sub, _Mul, _Div, _Lss, _Gtr, _Not, _EOF},
			[]string{"+", "-", "*", "/", "<", ">", "!", ""}},
		{"op_no_space", "a<=b", []Token{_Name, _Leq, _Name, _EOF}, []string{"a", "<=", "b", ""}},
		{"op_assign_eq", "a==-b", []Token{_Name, _Eql, _Sub, _Name, _EOF}, []string{"a", "==", "-", "b", ""}},

		// Punctuation
		{"punct", "( ) { } , ;",
			[]Token{_Lparen, _Rparen, _Lbrace, _Rbrace, _Comma, _Semi, _EOF},
			[]string{"(", ")", "{", "}", ",", ";", ""}},

		// Comments and whitespace
		{"line_comment", "a // b c\nd", []Token{_Name, _Name, _EOF}, []string{"a", "d", ""}},
		{"block_comment", "a /* b\n c */ d", []Token{_Name, _Name, _EOF}, []string{"a", "d", ""}},
		{"comment_only", "/* x */", []Token{_EOF}, []string{""}},
		{"div_not_comment", "a / b", []Token{_Name, _Div, _Name, _EOF}, []string{"a", "/", "b", ""}},
		{"whitespace", " \t\r\n\f\v", []Token{_EOF}, []string{""}},
		{"empty", "", []Token{_EOF}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scan(tt.src)
			for i, want := range tt.tokens {
				s.Next()
				if s.Token() != want {
					t.Fatalf("token %d: got %v, want %v", i, s.Token(), want)
				}
				if s.Literal() != tt.lits[i] {
					t.Errorf("token %d: literal = %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
			if err := s.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestScanLitKind(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"42", IntLit},
		{`"x"`, StringLit},
		{`'x'`, CharLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := scan(tt.src)
			s.Next()
			if s.Token() != _Literal {
				t.Fatalf("token = %v, want LITERAL", s.Token())
			}
			if s.LitKind() != tt.kind {
				t.Errorf("kind = %v, want %v", s.LitKind(), tt.kind)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := `#include <stdio.h>

int main() {
    int x = 123;
}`

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Directive, 1, 1},
		{_Int, 3, 1},
		{_Name, 3, 5},     // main
		{_Lparen, 3, 9},   // (
		{_Rparen, 3, 10},  // )
		{_Lbrace, 3, 12},  // {
		{_Int, 4, 5},      // int
		{_Name, 4, 9},     // x
		{_Assign, 4, 11},  // =
		{_Literal, 4, 13}, // 123
		{_Semi, 4, 16},    // ;
		{_Rbrace, 5, 1},   // }
		{_EOF, 5, 2},
	}

	s := scan(src)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
		line    uint32
		col     uint32
	}{
		{"bad_char_at", "int x @", "unrecognized character '@'", 1, 7},
		{"bad_char_dollar", "$", "unrecognized character '$'", 1, 1},
		{"lone_ampersand", "a & b", "unrecognized character '&'", 1, 3},
		{"lone_bar", "a | b", "unrecognized character '|'", 1, 3},
		{"percent", "a % b", "unrecognized character '%'", 1, 3},
		{"ident_after_digits", "x = 12ab;", "invalid character 'a' in integer literal", 1, 7},
		{"unterminated_string", "\n  \"hello", "string literal not terminated", 2, 3},
		{"string_newline", "\"ab\ncd\"", "string literal not terminated", 1, 1},
		{"bad_escape", `"a\qb"`, `unknown escape sequence \q`, 1, 3},
		{"escape_at_eof", `"\`, "escape sequence not terminated", 1, 2},
		{"empty_char", "''", "empty character literal", 1, 1},
		{"long_char", "'ab'", "character literal not terminated", 1, 1},
		{"unterminated_comment", "int /* never", "comment not terminated", 1, 5},
		{"unknown_directive", "#define X 1", "unsupported preprocessor directive #define", 1, 1},
		{"include_no_file", "#include stdio.h", `expected <file> or "file" after #include`, 1, 10},
		{"include_unterminated", "#include <stdio.h", "#include file name not terminated", 1, 1},
		{"include_trailing", "#include <stdio.h> int", "unexpected 'i' after #include", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scan(tt.src)
			for i := 0; i < 100; i++ {
				s.Next()
				if s.Token() == _EOF || s.Token() == _Error {
					break
				}
			}
			if s.Token() != _Error {
				t.Fatalf("final token = %v, want ERROR", s.Token())
			}
			err, ok := s.Err().(*LexError)
			if !ok {
				t.Fatalf("Err() = %v, want *LexError", s.Err())
			}
			if !strings.Contains(err.Msg, tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Msg, tt.wantErr)
			}
			if err.Pos.Line() != tt.line || err.Pos.Col() != tt.col {
				t.Errorf("error at %d:%d, want %d:%d", err.Pos.Line(), err.Pos.Col(), tt.line, tt.col)
			}
		})
	}
}

func TestScanErrorSticky(t *testing.T) {
	s := scan("a @ b c")
	s.Next() // a
	s.Next() // @
	if s.Token() != _Error {
		t.Fatalf("token = %v, want ERROR", s.Token())
	}
	for i := 0; i < 3; i++ {
		s.Next()
		if s.Token() != _Error {
			t.Errorf("Next after error: got %v, want ERROR", s.Token())
		}
	}
}

func TestScanUnicodeColumns(t *testing.T) {
	// Columns are byte offsets; a multi-byte rune inside a string
	// advances the column by its encoded width.
	s := scan(`"é" x`)
	s.Next()
	s.Next()
	if s.Token() != _Name || s.Pos().Col() != 6 {
		t.Errorf("got %v at col %d, want NAME at col 6", s.Token(), s.Pos().Col())
	}
}

func TestTokenize(t *testing.T) {
	items, err := Tokenize(NewBuffer("t.c", []byte("int a = 1;")))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Token{_Int, _Name, _Assign, _Literal, _Semi, _EOF}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, it := range items {
		if it.Tok != want[i] {
			t.Errorf("item %d = %v, want %v", i, it.Tok, want[i])
		}
	}
	if got := items[1].Pos.String(); got != "t.c:1:5" {
		t.Errorf("items[1].Pos = %s, want t.c:1:5", got)
	}

	items, err = Tokenize(NewBuffer("t.c", []byte("int a @")))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(items) != 2 {
		t.Errorf("got %d items before the error, want 2", len(items))
	}
	if got := err.Error(); got != "t.c:1:7: unrecognized character '@'" {
		t.Errorf("err = %q", got)
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `#include <stdio.h>
#include <stdlib.h>

// Checks whether n is prime.
int isPrime(int n) {
    int i;
    if (n < 2) return 0;
    for (i = 2; i * i <= n; i = i + 1) {
        if (n mod i == 0) return 0;
    }
    return 1;
}

int main() {
    char c = 'y';
    printf("%d\n", isPrime(atoi(gets())));
    return 0;
}
`
	items, err := Tokenize(NewBuffer("prime.c", []byte(src)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := map[Class]int{}
	for _, it := range items {
		count[it.Class()]++
	}
	if count[ClassDirective] != 2 {
		t.Errorf("directives = %d, want 2", count[ClassDirective])
	}
	if count[ClassCharLit] != 1 || count[ClassStringLit] != 1 {
		t.Errorf("char/string literals = %d/%d, want 1/1", count[ClassCharLit], count[ClassStringLit])
	}
	if items[len(items)-1].Tok != _EOF {
		t.Errorf("last item = %v, want EOF", items[len(items)-1].Tok)
	}
}
