package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// ParseError reports the first grammar violation: what the parser
// expected and the token it found instead.
type ParseError struct {
	Pos      Pos
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg()
}

// Msg returns the error message without the position prefix.
func (e *ParseError) Msg() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// Parser is a recursive-descent parser for MJS.
// It does no error recovery: the first lexical or syntax error aborts the
// parse, and FirstError reports it.
type Parser struct {
	scanner *Scanner

	// Current token (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	errh  func(pos Pos, msg string)
	first error
	abort bool

	fnest int // > 0 while parsing a function body
}

// NewParser creates a new Parser for the given source.
// errh, if not nil, is called with the first error.
func NewParser(filename string, src io.Reader, errh func(pos Pos, msg string)) *Parser {
	scanErrh := func(line, col uint32, msg string) {
		if errh != nil {
			errh(NewPos(filename, line, col), msg)
		}
	}

	return &Parser{
		scanner: NewScanner(filename, src, scanErrh),
		errh:    errh,
	}
}

// SetLiteralLimits passes the literal limit setting to the scanner.
// It must be called before Parse.
func (p *Parser) SetLiteralLimits(enabled bool) {
	p.scanner.SetLiteralLimits(enabled)
}

// FirstError returns the error that aborted the parse (a *LexError or a
// *ParseError), or nil.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	p.scanner.Next()
	if err := p.scanner.Err(); err != nil {
		if p.first == nil {
			p.first = err
		}
		p.abort = true
	}
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()
}

// got consumes the current token and returns true if it is tok.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes tok or reports a syntax error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(quote(tok))
	}
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError records a syntax error at the current token and aborts.
func (p *Parser) syntaxError(expected string) {
	if p.abort {
		return
	}
	err := &ParseError{Pos: p.pos, Expected: expected, Found: p.found()}
	p.first = err
	p.abort = true
	if p.errh != nil {
		p.errh(err.Pos, err.Msg())
	}
	p.tok = _EOF
}

// found describes the current token for error messages.
func (p *Parser) found() string {
	switch p.tok {
	case _EOF:
		return "EOF"
	case _Name:
		return "identifier " + p.lit
	case _Literal:
		if p.kind == StringLit {
			return "literal " + strconv.Quote(p.lit)
		}
		return "literal " + p.lit
	}
	return quote(p.tok)
}

func quote(tok Token) string {
	switch tok {
	case _EOF:
		return "EOF"
	case _Name:
		return "identifier"
	case _Literal:
		return "literal"
	}
	return "'" + tok.String() + "'"
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program.
// When FirstError is non-nil the returned tree is incomplete and must not
// be analyzed or executed.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	p.next()
	prog.pos = p.pos

	for !p.abort && p.tok != _EOF {
		switch p.tok {
		case _Let:
			d := p.varDecl()
			prog.Decls = append(prog.Decls, d)
			if d.Value != nil {
				s := &DeclStmt{Decl: d}
				s.pos = d.pos
				prog.Stmts = append(prog.Stmts, s)
			}
		case _Function:
			prog.Decls = append(prog.Decls, p.funcDecl())
		default:
			prog.Stmts = append(prog.Stmts, p.stmt())
		}
	}

	return prog
}

// ----------------------------------------------------------------------------
// Helpers

func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.pos
	if p.tok != _Name {
		p.syntaxError("identifier")
		return n
	}
	p.next()
	return n
}

// typ parses a type keyword. void is accepted only when allowVoid is set.
func (p *Parser) typ(allowVoid bool) *BasicType {
	t := &BasicType{Kind: p.tok}
	t.pos = p.pos
	switch {
	case p.tok == _Void && allowVoid:
		p.next()
	case p.tok == _Int || p.tok == _Float || p.tok == _String:
		p.next()
	case allowVoid:
		p.syntaxError("type (int, float, string or void)")
	default:
		p.syntaxError("type (int, float or string)")
	}
	return t
}

// ----------------------------------------------------------------------------
// Declarations

// varDecl parses: let Type Name [= Expr];
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	p.want(_Let)
	d.Type = p.typ(false)
	d.Name = p.name()
	if p.got(_Assign) {
		d.Value = p.expr()
	}
	p.want(_Semi)
	return d
}

// funcDecl parses: function Type Name(ParamList?) Block
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(_Function)
	d.Result = p.typ(true)
	d.Name = p.name()
	d.Params = p.paramList()

	p.fnest++
	d.Body = p.blockStmt()
	p.fnest--

	return d
}

// paramList parses (Type Name, Type Name, ...)
func (p *Parser) paramList() []*Param {
	p.want(_Lparen)

	var params []*Param
	if p.tok != _Rparen {
		for !p.abort {
			f := &Param{}
			f.pos = p.pos
			f.Type = p.typ(false)
			f.Name = p.name()
			params = append(params, f)
			if !p.got(_Comma) {
				break
			}
		}
	}

	p.want(_Rparen)
	return params
}

// ----------------------------------------------------------------------------
// Statements

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.blockStmt()
	case _If:
		return p.ifStmt()
	case _For:
		return p.forStmt()
	case _Return:
		return p.returnStmt()
	case _Read:
		return p.readStmt()
	case _Write:
		return p.writeStmt()
	case _Let, _Function:
		// declarations are only allowed at the top level
		s := &ExprStmt{}
		s.pos = p.pos
		p.syntaxError("statement")
		return s
	default:
		return p.simpleStmt()
	}
}

// simpleStmt parses an assignment or an expression statement.
func (p *Parser) simpleStmt() Stmt {
	pos := p.pos
	x := p.expr()

	if p.tok.IsAssignOp() {
		s := p.assignment(pos, x)
		p.want(_Semi)
		return s
	}

	s := &ExprStmt{X: x}
	s.pos = pos
	p.want(_Semi)
	return s
}

// assignment parses the operator and right-hand side of LHS op RHS.
func (p *Parser) assignment(pos Pos, lhs Expr) *AssignStmt {
	s := &AssignStmt{Op: p.tok}
	s.pos = pos

	name, ok := lhs.(*Name)
	if !ok {
		p.syntaxError("';'")
		s.LHS = &Name{Value: "_"}
		return s
	}
	s.LHS = name

	p.next() // consume = or op=
	s.RHS = p.expr()
	return s
}

// forClause parses the init or update part of a for statement.
func (p *Parser) forClause() *AssignStmt {
	pos := p.pos
	lhs := p.name()
	if !p.tok.IsAssignOp() {
		p.syntaxError("assignment operator")
		return &AssignStmt{Op: _Assign, LHS: lhs}
	}
	return p.assignment(pos, lhs)
}

func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)
	for !p.abort && p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.stmt())
	}
	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// ifStmt parses: if (Expr) Stmt [else Stmt]
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Then = p.stmt()

	if p.got(_Else) {
		s.Else = p.stmt()
	}
	return s
}

// forStmt parses: for ([Assign]; [Expr]; [Assign]) Block
func (p *Parser) forStmt() Stmt {
	s := &ForStmt{}
	s.pos = p.pos

	p.want(_For)
	p.want(_Lparen)
	if p.tok != _Semi {
		s.Init = p.forClause()
	}
	p.want(_Semi)
	if p.tok != _Semi {
		s.Cond = p.expr()
	}
	p.want(_Semi)
	if p.tok != _Rparen {
		s.Post = p.forClause()
	}
	p.want(_Rparen)
	s.Body = p.blockStmt()
	return s
}

// returnStmt parses: return [Expr];
func (p *Parser) returnStmt() Stmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	p.want(_Return)
	if p.tok != _Semi {
		s.Result = p.expr()
	}
	p.want(_Semi)
	return s
}

// readStmt parses: read Name; or read(Name);
func (p *Parser) readStmt() Stmt {
	s := &ReadStmt{}
	s.pos = p.pos

	p.want(_Read)
	if p.got(_Lparen) {
		s.Paren = true
		s.Target = p.name()
		p.want(_Rparen)
	} else {
		s.Target = p.name()
	}
	p.want(_Semi)
	return s
}

// writeStmt parses: write(Expr);
func (p *Parser) writeStmt() Stmt {
	s := &WriteStmt{}
	s.pos = p.pos

	p.want(_Write)
	p.want(_Lparen)
	s.X = p.expr()
	p.want(_Rparen)
	p.want(_Semi)
	return s
}

// ----------------------------------------------------------------------------
// Expressions

func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression whose operators bind tighter than
// prec (precedence climbing; all operators are left associative).
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for !p.abort {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}

		b := &BinaryExpr{Op: p.tok, X: x}
		b.pos = x.Pos()
		p.next()
		b.Y = p.binaryExpr(oprec)
		x = b
	}
	return x
}

func (p *Parser) unaryExpr() Expr {
	if p.tok == _Not {
		u := &UnaryExpr{Op: p.tok}
		u.pos = p.pos
		p.next()
		u.X = p.unaryExpr()
		return u
	}
	return p.operand()
}

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
		n := &Name{Value: "_"}
		n.pos = p.pos
		p.syntaxError("expression")
		return n
	}
}

// callExpr parses Fun(Args...)
func (p *Parser) callExpr(fun *Name) Expr {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		call.Args = append(call.Args, p.expr())
		for !p.abort && p.got(_Comma) {
			call.Args = append(call.Args, p.expr())
		}
	}
	p.want(_Rparen)

	return call
}
