package check

import "github.com/you-not-fish/fcheck/internal/syntax"

// stmts checks a list of statements, stopping at the first error.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		if c.failed() {
			return
		}
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		// Nothing to check

	case *syntax.ExprStmt:
		c.expr(s.X)

	case *syntax.DeclStmt:
		c.varDecl(s.Decl)

	case *syntax.BlockStmt:
		c.blockStmt(s)

	case *syntax.IfStmt:
		c.expr(s.Cond)
		c.stmt(s.Then)
		if s.Else != nil {
			c.stmt(s.Else)
		}

	case *syntax.WhileStmt:
		c.expr(s.Cond)
		c.stmt(s.Body)

	case *syntax.ForStmt:
		c.optExpr(s.Init)
		c.optExpr(s.Cond)
		c.optExpr(s.Post)
		c.stmt(s.Body)

	case *syntax.ReturnStmt:
		c.optExpr(s.Result)
	}
}

// blockStmt checks a nested block in its own scope.
func (c *Checker) blockStmt(b *syntax.BlockStmt) {
	c.openScope(b, "block")
	c.stmts(b.Stmts)
	c.closeScope()
}
