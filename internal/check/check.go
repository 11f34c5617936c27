package check

import (
	"github.com/you-not-fish/fcheck/internal/symbols"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Checker validates one program. It is created per run by Check and holds
// no state beyond that run.
type Checker struct {
	conf *Config
	info *Info

	universe *symbols.Scope // built-ins
	scope    *symbols.Scope // current scope

	err *SemanticError // first error
}

// builtins returns the configured built-in table, or the default one.
func (c *Checker) builtins() []symbols.Signature {
	if c.conf.Builtins == nil {
		return symbols.DefaultBuiltins()
	}
	return c.conf.Builtins
}

// checkProgram validates a whole program.
func (c *Checker) checkProgram(prog *syntax.Program) {
	c.scope = c.universe
	c.openScope(prog, "program")
	defer c.closeScope()

	// Phase 1: declare every function, so calls may refer to functions
	// defined later in the file (and to themselves).
	c.collectFuncs(prog.Decls)

	// Phase 2: global variables and function bodies, in source order.
	for _, d := range prog.Decls {
		if c.failed() {
			return
		}
		switch d := d.(type) {
		case *syntax.VarDecl:
			c.varDecl(d)
		case *syntax.FuncDecl:
			c.funcBody(d)
		}
	}
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(n syntax.Node, comment string) *symbols.Scope {
	s := symbols.NewScope(c.scope, n.Pos(), comment)
	c.scope = s
	if c.info != nil {
		c.info.Scopes[n] = s
	}
	return s
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	c.scope = c.scope.Parent()
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) symbols.Object {
	obj, _ := c.scope.LookupParent(name)
	return obj
}

// declare declares obj in the current scope. Shadowing an outer scope is
// allowed; a second declaration in the same scope is not.
func (c *Checker) declare(name *syntax.Name, obj symbols.Object) {
	if existing := c.scope.Insert(obj); existing != nil {
		if prev := existing.Pos(); prev.IsValid() {
			c.errorf(DuplicateDeclaration, name.Pos(), name.Value,
				"%s redeclared in this scope (previous declaration at %d:%d)",
				name.Value, prev.Line(), prev.Col())
		} else {
			c.errorf(DuplicateDeclaration, name.Pos(), name.Value,
				"%s redeclared in this scope", name.Value)
		}
		return
	}
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj symbols.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
