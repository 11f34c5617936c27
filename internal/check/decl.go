package check

import (
	"github.com/you-not-fish/fcheck/internal/symbols"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// collectFuncs declares every function of the program in the program scope.
func (c *Checker) collectFuncs(decls []syntax.Decl) {
	for _, d := range decls {
		fd, ok := d.(*syntax.FuncDecl)
		if !ok {
			continue
		}
		c.declare(fd.Name, symbols.NewFunc(fd.Name.Pos(), fd.Name.Value, len(fd.Params)))
		if c.failed() {
			return
		}
	}
}

// funcBody checks a function body in a fresh scope seeded with the
// parameters. The body's own declarations share that scope, so a local
// may not redeclare a parameter.
func (c *Checker) funcBody(fd *syntax.FuncDecl) {
	c.openScope(fd, "function "+fd.Name.Value)
	defer c.closeScope()

	for _, p := range fd.Params {
		c.declare(p.Name, symbols.NewVar(p.Name.Pos(), p.Name.Value, p.Type))
		if c.failed() {
			return
		}
	}

	if fd.Body != nil {
		c.stmts(fd.Body.Stmts)
	}
}

// varDecl checks a variable declaration in the current scope. Each
// initializer is checked before its own name is declared, so it cannot
// refer to the variable it initializes.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	for _, v := range d.Vars {
		if v.Value != nil {
			c.expr(v.Value)
		}
		if c.failed() {
			return
		}
		c.declare(v.Name, symbols.NewVar(v.Name.Pos(), v.Name.Value, d.Type))
		if c.failed() {
			return
		}
	}
}
