package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes fall into three classes: expressions, statements and declarations.
// All of them implement Node. The tree is built once by the parser and is
// not modified afterwards.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
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

// Decl is the interface for all declaration nodes.
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

// Program is the root of the tree: every global declaration, every
// function and the top-level statement sequence, in source order.
type Program struct {
	node
	Decls []Decl // *VarDecl and *FuncDecl
	Stmts []Stmt // top-level statements; initialized globals appear as *DeclStmt
}

// BasicType is a type keyword: int, float, string or void.
type BasicType struct {
	node
	Kind Token // _Int, _Float, _String or _Void
}

// Name returns the type keyword text.
func (t *BasicType) Name() string {
	return t.Kind.String()
}

// VarDecl represents: let Type Name [= Value];
type VarDecl struct {
	decl
	Type  *BasicType
	Name  *Name
	Value Expr // nil if no initializer
}

// FuncDecl represents: function Result Name(Params) Body
type FuncDecl struct {
	decl
	Result *BasicType
	Name   *Name
	Params []*Param
	Body   *BlockStmt
}

// Param is one entry of a parameter list: Type Name
type Param struct {
	node
	Type *BasicType
	Name *Name
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// BasicLit represents an int, float or string literal.
type BasicLit struct {
	expr
	Value string // literal text; string content without the quotes
	Kind  LitKind
}

// UnaryExpr represents: Op X
type UnaryExpr struct {
	expr
	Op Token // _Not
	X  Expr
}

// BinaryExpr represents: X Op Y
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// CallExpr represents: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}

// ParenExpr represents: (X)
type ParenExpr struct {
	expr
	X Expr
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	stmt
	X Expr
}

// AssignStmt represents: LHS = RHS, or a compound assignment LHS op= RHS.
type AssignStmt struct {
	stmt
	Op  Token // _Assign, _AddAssign, _SubAssign, _MulAssign, _DivAssign or _RemAssign
	LHS *Name
	RHS Expr
}

// IsCompound reports whether s reads its target before storing (op=).
func (s *AssignStmt) IsCompound() bool {
	return s.Op != _Assign
}

// BlockStmt represents: { Stmts... }
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos
}

// IfStmt represents: if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

// ForStmt represents: for (Init; Cond; Post) Body
// Any of Init, Cond and Post may be nil; a nil Cond is always true.
type ForStmt struct {
	stmt
	Init *AssignStmt
	Cond Expr
	Post *AssignStmt
	Body *BlockStmt
}

// ReturnStmt represents: return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}

// ReadStmt represents both read forms: read x; and read(x);
type ReadStmt struct {
	stmt
	Target *Name
	Paren  bool // written as read(x)
}

// WriteStmt represents: write(X);
type WriteStmt struct {
	stmt
	X Expr
}

// DeclStmt marks the point in the top-level sequence where an initialized
// global declaration runs its initializer.
type DeclStmt struct {
	stmt
	Decl *VarDecl
}
