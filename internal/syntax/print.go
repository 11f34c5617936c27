package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, inc := range n.Includes {
			p.print(inc)
		}
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *Include:
		if n.System {
			p.printf("Include %s <%s>\n", n.pos, n.Path)
		} else {
			p.printf("Include %s %q\n", n.pos, n.Path)
		}

	case *FuncDecl:
		p.printf("FuncDecl %s\n", n.pos)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Result: %s\n", n.Result)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, f := range n.Params {
				p.printf("%s %s\n", f.Type, f.Name.Value)
			}
			p.indent--
		}
		if n.Body != nil {
			p.field("Body", n.Body)
		}
		p.indent--

	case *VarDecl:
		p.printf("VarDecl %s %s\n", n.pos, n.Type)
		p.indent++
		for _, v := range n.Vars {
			p.print(v)
		}
		p.indent--

	case *VarSpec:
		p.printf("Var %s %s\n", n.pos, n.Name.Value)
		if n.Value != nil {
			p.indent++
			p.print(n.Value)
			p.indent--
		}

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *DeclStmt:
		p.print(n.Decl)

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Then", n.Then)
		if n.Else != nil {
			p.field("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.field("Init", n.Init)
		}
		if n.Cond != nil {
			p.field("Cond", n.Cond)
		}
		if n.Post != nil {
			p.field("Post", n.Post)
		}
		p.field("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s %q\n", n.pos, n.Kind, n.Value)

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.field("X", n.X)
		p.field("Y", n.Y)
		p.indent--

	case *AssignExpr:
		p.printf("AssignExpr %s %s\n", n.pos, n.Target.Value)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s\n", n.pos, n.Fun.Value)
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent -= 2
		}

	default:
		p.printf("<%T>\n", node)
	}
}
