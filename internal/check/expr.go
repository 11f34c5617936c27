package check

import (
	"github.com/you-not-fish/fcheck/internal/symbols"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// expr checks an expression, depth-first and left to right.
func (c *Checker) expr(e syntax.Expr) {
	if c.failed() {
		return
	}

	switch e := e.(type) {
	case *syntax.BasicLit:
		// Nothing to check

	case *syntax.Name:
		c.resolve(e)

	case *syntax.ParenExpr:
		c.expr(e.X)

	case *syntax.UnaryExpr:
		c.expr(e.X)

	case *syntax.BinaryExpr:
		c.expr(e.X)
		c.expr(e.Y)

	case *syntax.AssignExpr:
		c.assignment(e)

	case *syntax.CallExpr:
		c.call(e)
	}
}

// optExpr checks e if it is present.
func (c *Checker) optExpr(e syntax.Expr) {
	if e != nil {
		c.expr(e)
	}
}

// resolve looks up a name in expression position.
func (c *Checker) resolve(name *syntax.Name) symbols.Object {
	obj := c.lookup(name.Value)
	if obj == nil {
		c.errorf(UndeclaredIdentifier, name.Pos(), name.Value,
			"undeclared identifier %s", name.Value)
		return nil
	}
	c.recordUse(name, obj)
	return obj
}

// assignment checks Target = Value. The target must denote a variable.
func (c *Checker) assignment(a *syntax.AssignExpr) {
	obj := c.lookup(a.Target.Value)
	switch {
	case obj == nil:
		c.errorf(UndeclaredIdentifier, a.Target.Pos(), a.Target.Value,
			"undeclared identifier %s", a.Target.Value)
		return
	case obj.Kind() != symbols.VarKind:
		c.errorf(UndeclaredIdentifier, a.Target.Pos(), a.Target.Value,
			"no variable named %s is visible (%s is a %s)", a.Target.Value, a.Target.Value, obj.Kind())
		return
	}
	c.recordUse(a.Target, obj)
	c.expr(a.Value)
}

// call checks a call: the callee must be a function or built-in and the
// argument count must match its signature. Arguments are checked last.
func (c *Checker) call(call *syntax.CallExpr) {
	fun := call.Fun
	obj := c.lookup(fun.Value)
	if obj == nil {
		c.errorf(UndeclaredIdentifier, fun.Pos(), fun.Value,
			"undeclared function %s", fun.Value)
		return
	}
	callee, ok := obj.(symbols.Callable)
	if !ok {
		c.errorf(UndeclaredIdentifier, fun.Pos(), fun.Value,
			"no function named %s is visible (%s is a %s)", fun.Value, fun.Value, obj.Kind())
		return
	}
	c.recordUse(fun, obj)

	sig := callee.Signature()
	if n := len(call.Args); !sig.Accepts(n) {
		c.errorf(ArityMismatch, fun.Pos(), fun.Value,
			"wrong number of arguments in call to %s: have %d, want %s", fun.Value, n, sig.Want())
		return
	}

	for _, arg := range call.Args {
		c.expr(arg)
	}
}
