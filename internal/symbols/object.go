package symbols

import (
	"fmt"

	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Kind distinguishes variables from callables.
type Kind uint8

const (
	VarKind Kind = iota
	FuncKind
	BuiltinKind
)

func (k Kind) String() string {
	switch k {
	case VarKind:
		return "variable"
	case FuncKind:
		return "function"
	case BuiltinKind:
		return "built-in function"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Object is a declared entity: a variable, a function or a built-in.
type Object interface {
	Name() string    // object name
	Kind() Kind      // object kind
	Pos() syntax.Pos // declaration position; NoPos for built-ins
	Parent() *Scope  // scope the object was declared in

	setParent(*Scope)
	aObject()
}

// object is the base struct for all objects.
type object struct {
	name   string
	pos    syntax.Pos
	parent *Scope
}

func (o *object) Name() string       { return o.name }
func (o *object) Pos() syntax.Pos    { return o.pos }
func (o *object) Parent() *Scope     { return o.parent }
func (o *object) setParent(s *Scope) { o.parent = s }
func (*object) aObject()             {}

// Depth returns the depth of the scope obj was declared in, or -1 if obj
// has not been inserted into a scope.
func Depth(obj Object) int {
	if obj.Parent() == nil {
		return -1
	}
	return obj.Parent().Depth()
}

// Var is a variable or function parameter.
type Var struct {
	object
	typ syntax.Token // declared type keyword
}

// NewVar creates a variable object.
func NewVar(pos syntax.Pos, name string, typ syntax.Token) *Var {
	return &Var{object: object{name: name, pos: pos}, typ: typ}
}

func (*Var) Kind() Kind { return VarKind }

// Type returns the type keyword the variable was declared with.
func (v *Var) Type() syntax.Token { return v.typ }

func (v *Var) String() string {
	return fmt.Sprintf("%s %s %s", v.name, VarKind, v.typ)
}

// Callable is implemented by objects that may appear as a call's callee.
type Callable interface {
	Object
	Signature() Signature
}

// Func is a function defined in the program.
type Func struct {
	object
	sig Signature
}

// NewFunc creates a function object with nparams fixed parameters.
func NewFunc(pos syntax.Pos, name string, nparams int) *Func {
	return &Func{
		object: object{name: name, pos: pos},
		sig:    Signature{Name: name, Params: nparams},
	}
}

func (*Func) Kind() Kind { return FuncKind }

// Signature returns the function's parameter count.
func (f *Func) Signature() Signature { return f.sig }

func (f *Func) String() string {
	return fmt.Sprintf("%s %s %s", f.name, FuncKind, f.sig)
}

// Builtin is a pre-declared function supplied by the host environment.
type Builtin struct {
	object
	sig Signature
}

// NewBuiltin creates a built-in function object from sig.
func NewBuiltin(sig Signature) *Builtin {
	return &Builtin{object: object{name: sig.Name, pos: syntax.NoPos}, sig: sig}
}

func (*Builtin) Kind() Kind { return BuiltinKind }

// Signature returns the built-in's arity.
func (b *Builtin) Signature() Signature { return b.sig }

func (b *Builtin) String() string {
	return fmt.Sprintf("%s %s %s", b.name, BuiltinKind, b.sig)
}
