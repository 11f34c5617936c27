package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a syntax tree in depth-first order, children in source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, inc := range n.Includes {
			Walk(inc, v)
		}
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *Param:
		Walk(n.Name, v)

	case *VarDecl:
		for _, s := range n.Vars {
			Walk(s, v)
		}

	case *VarSpec:
		Walk(n.Name, v)
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *DeclStmt:
		Walk(n.Decl, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		for _, x := range []Expr{n.Init, n.Cond, n.Post} {
			if x != nil {
				Walk(x, v)
			}
		}
		Walk(n.Body, v)

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *AssignExpr:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Include, Name, BasicLit, EmptyStmt
	}
}

// Inspect traverses a syntax tree and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
