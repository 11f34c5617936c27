package syntax

import "strconv"

// SyntaxError reports a token that does not fit the grammar.
type SyntaxError struct {
	Pos      Pos
	Expected string // what the grammar required at Pos
	Found    string // description of the token actually there
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg()
}

// Msg returns the error message without its position.
func (e *SyntaxError) Msg() string {
	return "expected " + e.Expected + ", found " + e.Found
}

// Parser is a recursive-descent parser for FC source code.
// It stops at the first lexical or syntax error; there is no recovery.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	// first error encountered; once set the parser only unwinds
	first error
}

// NewParser creates a Parser reading buf.
func NewParser(buf *Buffer) *Parser {
	p := &Parser{scanner: NewScanner(buf)}
	p.next() // prime the parser with first token
	return p
}

// Parse parses a complete program. It returns either the syntax tree or
// the first *LexError or *SyntaxError encountered.
func Parse(buf *Buffer) (*Program, error) {
	return NewParser(buf).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.first != nil {
		return
	}
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()

	if p.tok == _Error {
		p.fail(p.scanner.Err())
	}
}

// got reports whether the current token is tok.
// If so, it consumes the token.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok; otherwise it fails.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(strconv.Quote(tok.String()))
	}
}

// ----------------------------------------------------------------------------
// Error handling

// fail records err as the parse result and forces the token stream to
// end, so every parsing function returns promptly.
func (p *Parser) fail(err error) {
	if p.first == nil {
		p.first = err
	}
	p.tok = _EOF
}

// syntaxError reports that expected was required at the current token.
func (p *Parser) syntaxError(expected string) {
	p.syntaxErrorAt(p.pos, expected, p.found())
}

func (p *Parser) syntaxErrorAt(pos Pos, expected, found string) {
	if p.first != nil {
		return
	}
	p.fail(&SyntaxError{Pos: pos, Expected: expected, Found: found})
}

// found describes the current token for diagnostics.
func (p *Parser) found() string {
	return Item{Tok: p.tok, Kind: p.kind, Lit: p.lit, Pos: p.pos}.String()
}

// Err returns the first error encountered, or nil if none.
func (p *Parser) Err() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	for p.tok != _EOF {
		switch {
		case p.tok == _Directive:
			prog.Includes = append(prog.Includes, p.include())
		case p.tok == _Semi:
			p.next() // stray terminator between declarations
		case p.tok.IsTypeKeyword():
			prog.Decls = append(prog.Decls, p.topDecl())
		default:
			p.syntaxError("declaration")
		}
	}

	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.pos
	if p.tok != _Name {
		p.syntaxError("identifier")
		n.Value = "_"
		return n
	}
	p.next()
	return n
}

// terminator consumes the optional statement terminator after a simple
// statement. A missing terminator is accepted only when the next token
// begins another statement or closes the enclosing construct.
func (p *Parser) terminator(top bool) {
	if p.got(_Semi) {
		return
	}
	if canStartStmt(p.tok) || canEndBlock(p.tok, top) {
		return
	}
	p.syntaxError(strconv.Quote(_Semi.String()))
}

// ----------------------------------------------------------------------------
// Declarations

// include converts a directive token into an Include node.
func (p *Parser) include() *Include {
	d := &Include{}
	d.pos = p.pos
	if n := len(p.lit); n >= 2 {
		d.Path = p.lit[1 : n-1]
		d.System = p.lit[0] == '<'
	}
	p.next()
	return d
}

// topDecl parses a function definition or a global variable declaration.
// Both start with a type keyword and a name; a '(' decides which.
func (p *Parser) topDecl() Decl {
	pos, typ := p.pos, p.tok
	p.next()
	name := p.name()

	if p.tok == _Lparen {
		return p.funcDecl(pos, typ, name)
	}
	if !typ.IsVarType() {
		p.syntaxErrorAt(pos, "variable type", strconv.Quote(typ.String()))
	}
	return p.varDecl(pos, typ, name, true)
}

// funcDecl parses the rest of: Type Name(Params) Block
func (p *Parser) funcDecl(pos Pos, result Token, name *Name) *FuncDecl {
	d := &FuncDecl{Result: result, Name: name}
	d.pos = pos

	p.want(_Lparen)
	if p.tok != _Rparen {
		d.Params = p.paramList()
	}
	p.want(_Rparen)

	d.Body = p.blockStmt()
	return d
}

// paramList parses a comma-separated list of Type Name pairs.
func (p *Parser) paramList() []*Param {
	var params []*Param
	for {
		f := &Param{Type: p.tok}
		f.pos = p.pos
		if !p.tok.IsVarType() {
			p.syntaxError("parameter type")
			return params
		}
		p.next()
		f.Name = p.name()
		params = append(params, f)

		if !p.got(_Comma) {
			return params
		}
	}
}

// varDecl parses the rest of a variable declaration whose type and first
// name have been consumed: [= Expr] {, Name [= Expr]} [;]
func (p *Parser) varDecl(pos Pos, typ Token, first *Name, top bool) *VarDecl {
	d := &VarDecl{Type: typ}
	d.pos = pos

	d.Vars = append(d.Vars, p.varSpec(first))
	for p.got(_Comma) {
		d.Vars = append(d.Vars, p.varSpec(p.name()))
	}

	p.terminator(top)
	return d
}

// varSpec parses the optional initializer following name.
func (p *Parser) varSpec(name *Name) *VarSpec {
	v := &VarSpec{Name: name}
	v.pos = name.Pos()
	if p.got(_Assign) {
		v.Value = p.expr()
	}
	return v
}

// ----------------------------------------------------------------------------
// Statements

// blockStmt parses { items... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.blockItem())
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)
	return b
}

// blockItem parses a local declaration or a statement.
func (p *Parser) blockItem() Stmt {
	switch {
	case p.tok.IsVarType():
		pos, typ := p.pos, p.tok
		p.next()
		d := p.varDecl(pos, typ, p.name(), false)
		s := &DeclStmt{Decl: d}
		s.pos = pos
		return s

	case p.tok == _Void:
		p.syntaxError("variable type")
		return nil
	}
	return p.stmt()
}

// stmt parses a statement. Declarations are not statements: they may only
// appear directly inside a block.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	case _While:
		return p.whileStmt()

	case _For:
		return p.forStmt()

	case _Return:
		return p.returnStmt()

	case _Semi:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	default:
		return p.exprStmt()
	}
}

// exprStmt parses Expr [;]
func (p *Parser) exprStmt() Stmt {
	s := &ExprStmt{}
	s.pos = p.pos
	s.X = p.expr()
	p.terminator(false)
	return s
}

// ifStmt parses: if (Cond) Stmt [else Stmt]
// else binds to the nearest if, so else-if chains nest to the right.
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Cond = p.parenExpr()
	s.Then = p.stmt()

	if p.got(_Else) {
		s.Else = p.stmt()
	}
	return s
}

// whileStmt parses: while (Cond) Stmt
func (p *Parser) whileStmt() Stmt {
	s := &WhileStmt{}
	s.pos = p.pos

	p.want(_While)
	s.Cond = p.parenExpr()
	s.Body = p.stmt()
	return s
}

// forStmt parses: for ([Init]; [Cond]; [Post]) Stmt
func (p *Parser) forStmt() Stmt {
	s := &ForStmt{}
	s.pos = p.pos

	p.want(_For)
	p.want(_Lparen)
	if p.tok != _Semi {
		s.Init = p.expr()
	}
	p.want(_Semi)
	if p.tok != _Semi {
		s.Cond = p.expr()
	}
	p.want(_Semi)
	if p.tok != _Rparen {
		s.Post = p.expr()
	}
	p.want(_Rparen)

	s.Body = p.stmt()
	return s
}

// returnStmt parses: return [Expr] [;]
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	p.want(_Return)
	if p.tok != _Semi && p.tok != _Rbrace && p.tok != _EOF {
		s.Result = p.expr()
	}

	p.terminator(false)
	return s
}

// parenExpr parses ( Expr ) as used by if and while.
func (p *Parser) parenExpr() Expr {
	p.want(_Lparen)
	x := p.expr()
	p.want(_Rparen)
	return x
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression, including right-associative assignment.
func (p *Parser) expr() Expr {
	x := p.binaryExpr(precNone)
	if p.tok != _Assign {
		return x
	}

	target, ok := x.(*Name)
	if !ok {
		p.syntaxErrorAt(x.Pos(), "identifier on left side of =", "expression")
		return x
	}
	p.next() // consume =

	a := &AssignExpr{Target: target}
	a.pos = target.Pos()
	a.Value = p.expr()
	return a
}

// binaryExpr parses a binary expression whose operators all bind tighter
// than prec (precedence climbing).
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		// Binary expression position starts at the left operand.
		op := &BinaryExpr{Op: p.tok, X: x}
		op.pos = x.Pos()

		p.next() // consume operator

		// Parsing the right operand one level tighter keeps the operator
		// left-associative.
		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

// unaryExpr parses a unary expression.
func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Not, _Sub:
		op := &UnaryExpr{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op
	}
	return p.operand()
}

// operand parses a literal, name, call or parenthesized expression.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _Name:
		n := p.name()
		if p.tok == _Lparen {
			return p.callExpr(n)
		}
		return n

	case _Literal:
		lit := &BasicLit{Value: p.lit, Kind: p.kind}
		lit.pos = p.pos
		p.next()
		return lit

	case _Lparen:
		paren := &ParenExpr{}
		paren.pos = p.pos
		p.next()
		paren.X = p.expr()
		p.want(_Rparen)
		return paren

	default:
		p.syntaxError("expression")
		n := &Name{Value: "_"}
		n.pos = p.pos
		return n
	}
}

// callExpr parses Fun(args...)
func (p *Parser) callExpr(fun *Name) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = p.exprList()
	}
	call.Rparen = p.pos
	p.want(_Rparen)

	return call
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for p.got(_Comma) {
		list = append(list, p.expr())
	}
	return list
}
