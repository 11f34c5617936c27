// Package symbols defines the objects a program declares and the lexical
// scopes that hold them.
package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Scope is a lexical region holding declared names.
// Scopes form a tree rooted at a universe scope; each scope owns its
// symbol table exclusively.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]Object
	depth    int
	pos      syntax.Pos
	comment  string // e.g. "universe", "function prime", "block"
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, pos syntax.Pos, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]Object),
		pos:     pos,
		comment: comment,
	}
	if parent != nil {
		s.depth = parent.depth + 1
		parent.children = append(parent.children, s)
	}
	return s
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the scopes nested directly inside s.
func (s *Scope) Children() []*Scope { return s.children }

// Depth returns the nesting depth of s; a root scope has depth 0.
func (s *Scope) Depth() int { return s.depth }

// Pos returns the position of the construct that opened the scope.
func (s *Scope) Pos() syntax.Pos { return s.pos }

// Comment returns the scope's description (for debugging).
func (s *Scope) Comment() string { return s.comment }

// Lookup returns the object named name in s itself, or nil.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// LookupParent searches s and then each enclosing scope for name.
// It returns the object and the scope in which it was found,
// or (nil, nil).
func (s *Scope) LookupParent(name string) (Object, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if obj := scope.elems[name]; obj != nil {
			return obj, scope
		}
	}
	return nil, nil
}

// Insert adds obj to s. If s already holds an object with the same name,
// Insert leaves s unchanged and returns that object; otherwise it returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	obj.setParent(s)
	return nil
}

// Names returns the sorted names of the objects declared in s.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of objects declared in s.
func (s *Scope) Len() int {
	return len(s.elems)
}

// String returns the scope tree below s, for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s\n", prefix, s.elems[name])
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
