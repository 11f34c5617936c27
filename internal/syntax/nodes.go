package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The syntax tree is a closed sum type: every node implements Node, and the
// unexported marker methods keep the set of variants inside this package.
// Expressions, statements and declarations additionally implement Expr, Stmt
// and Decl. Each node owns its children; the tree has no sharing.

// Node is the interface implemented by all syntax tree nodes.
type Node interface {
	Pos() Pos // position of the node's first token
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for top-level declarations.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Program and declarations

// Program is a complete source file.
type Program struct {
	node
	Includes []*Include // #include lines, in source order
	Decls    []Decl     // top-level declarations
}

// Include is an #include line. Included files are not read.
type Include struct {
	node
	Path   string // header name without delimiters
	System bool   // <file> rather than "file"
}

// FuncDecl is a function definition: Result Name(Params) Body
type FuncDecl struct {
	decl
	Result Token      // _Int, _Char or _Void
	Name   *Name      // function name
	Params []*Param   // parameter list, possibly empty
	Body   *BlockStmt // function body
}

// Param is one function parameter: Type Name
type Param struct {
	node
	Type Token // _Int or _Char
	Name *Name
}

// VarDecl declares one or more variables: Type a, b = 1, c
// It appears at top level and, wrapped in a DeclStmt, inside blocks.
type VarDecl struct {
	decl
	Type Token      // _Int or _Char
	Vars []*VarSpec // at least one
}

// VarSpec is one declared name with an optional initializer.
type VarSpec struct {
	node
	Name  *Name
	Value Expr // nil if not initialized
}

// ----------------------------------------------------------------------------
// Expressions

// Name is an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit is an integer, string or character literal.
type BasicLit struct {
	expr
	Value string  // literal text (decoded for strings and chars)
	Kind  LitKind // IntLit, StringLit, CharLit
}

// ParenExpr is a parenthesized expression: (X)
type ParenExpr struct {
	expr
	X Expr
}

// UnaryExpr is a prefix operation: !X or -X
type UnaryExpr struct {
	expr
	Op Token // _Not or _Sub
	X  Expr
}

// BinaryExpr is an infix operation: X Op Y
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// AssignExpr is an assignment: Target = Value
// Assignment is an expression so it may appear in for clauses and conditions.
type AssignExpr struct {
	expr
	Target *Name
	Value  Expr
}

// CallExpr is a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun    *Name
	Args   []Expr
	Rparen Pos // position of the closing parenthesis
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt is a lone terminator.
type EmptyStmt struct {
	stmt
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// DeclStmt wraps a variable declaration inside a block.
type DeclStmt struct {
	stmt
	Decl *VarDecl
}

// BlockStmt is a brace-delimited statement list: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of the closing brace
}

// IfStmt is: if (Cond) Then [else Else]
// An else-if chain nests another IfStmt in Else.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else branch
}

// WhileStmt is: while (Cond) Body
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// ForStmt is: for (Init; Cond; Post) Body
// Each clause may be nil.
type ForStmt struct {
	stmt
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
}

// ReturnStmt is: return [Result]
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}
