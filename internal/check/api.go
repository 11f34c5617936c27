// Package check implements semantic validation for FC programs and the
// source-to-verdict pipeline built on top of it.
package check

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/fcheck/internal/symbols"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Config specifies the configuration for checking.
type Config struct {
	// Builtins lists the pre-declared functions visible to every program.
	// If nil, symbols.DefaultBuiltins() is used. The slice is only read.
	Builtins []symbols.Signature
}

// Info holds the results of checking, for tools that want more than the
// verdict. Nil maps are allocated by Check.
type Info struct {
	// Defs maps declaring identifiers to the objects they declare.
	Defs map[*syntax.Name]symbols.Object

	// Uses maps referencing identifiers to the objects they denote.
	Uses map[*syntax.Name]symbols.Object

	// Scopes maps the Program, each FuncDecl and each nested BlockStmt
	// to the scope it opens.
	Scopes map[syntax.Node]*symbols.Scope
}

// Check validates a parsed program.
// It returns nil or the first *SemanticError encountered.
func Check(prog *syntax.Program, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}

	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]symbols.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]symbols.Object)
		}
		if info.Scopes == nil {
			info.Scopes = make(map[syntax.Node]*symbols.Scope)
		}
	}

	c := &Checker{conf: conf, info: info}
	c.universe = symbols.NewUniverse(c.builtins())
	c.checkProgram(prog)

	if c.err != nil {
		return c.err
	}
	return nil
}

// Severity of a diagnostic. Every diagnostic is currently an error.
type Severity uint8

const (
	SeverityError Severity = iota
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return fmt.Sprintf("Severity(%d)", s)
}

// Diagnostic is the single message a rejected run produces.
type Diagnostic struct {
	Code     Code
	Message  string // without position
	Pos      syntax.Pos
	Severity Severity
}

// String formats d as "pos: error: message".
func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Verdict is the result of validating one program.
type Verdict struct {
	WellFormed bool
	Diagnostic *Diagnostic // nil if WellFormed
}

// Validate runs the whole pipeline (scan, parse, check) over src.
// It is a pure function of its arguments.
func Validate(filename string, src []byte, conf *Config) Verdict {
	return ValidateBuffer(syntax.NewBuffer(filename, src), conf)
}

// ValidateBuffer is like Validate but reads an existing Buffer.
func ValidateBuffer(buf *syntax.Buffer, conf *Config) Verdict {
	prog, err := syntax.Parse(buf)
	if err == nil {
		err = Check(prog, conf, nil)
	}
	if err != nil {
		return Verdict{Diagnostic: DiagnosticFor(err)}
	}
	return Verdict{WellFormed: true}
}

// DiagnosticFor converts an error returned by syntax.Parse or Check into
// a Diagnostic. Other errors yield nil.
func DiagnosticFor(err error) *Diagnostic {
	var (
		lexErr *syntax.LexError
		synErr *syntax.SyntaxError
		semErr *SemanticError
	)
	switch {
	case errors.As(err, &lexErr):
		return &Diagnostic{Code: LexError, Message: lexErr.Msg, Pos: lexErr.Pos}
	case errors.As(err, &synErr):
		return &Diagnostic{Code: SyntaxError, Message: synErr.Msg(), Pos: synErr.Pos}
	case errors.As(err, &semErr):
		return &Diagnostic{Code: semErr.Code, Message: semErr.Msg, Pos: semErr.Pos}
	}
	return nil
}
