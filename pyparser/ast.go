package pyparser

// The AST is a strictly-owned tree: every node is owned by its parent,
// there are no shared or back references, and every statement or
// expression list is present (possibly empty), never nil.

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes: a literal, a name, or a call.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node, always produced by a successful parse.
type Program struct {
	Body []Stmt
}

// FunctionDef is a function definition: name, bare parameter names, body.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// Assign binds a single target name to an expression value.
type Assign struct {
	Target string
	Value  Expr
}

// Return is a return statement with its value expression.
type Return struct {
	Value Expr
}

// Expression wraps a bare expression used as a statement.
type Expression struct {
	Value Expr
}

// If is a conditional with a true-branch body and an (often empty)
// alternative branch.
type If struct {
	Condition Expr
	Body      []Stmt
	Orelse    []Stmt
}

// For is a for-loop over an iterable expression.
type For struct {
	Var      string
	Iterable Expr
	Body     []Stmt
}

// While is a while-loop.
type While struct {
	Condition Expr
	Body      []Stmt
}

// Call is a call of a named callee with expression arguments. It is an
// expression; a call in statement position arrives wrapped in Expression.
type Call struct {
	Func string
	Args []Expr
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Num Number
	Raw string // original digit text
}

// StringLit is a string literal (escape-decoded). The parser also uses
// it for the fallback production that degrades any other token to its
// literal text.
type StringLit struct {
	Value string
}

// Name is an identifier used as an expression.
type Name struct {
	Value string
}

func (*Program) node()     {}
func (*FunctionDef) node() {}
func (*Assign) node()      {}
func (*Return) node()      {}
func (*Expression) node()  {}
func (*If) node()          {}
func (*For) node()         {}
func (*While) node()       {}
func (*Call) node()        {}
func (*NumberLit) node()   {}
func (*StringLit) node()   {}
func (*Name) node()        {}

func (*FunctionDef) stmtNode() {}
func (*Assign) stmtNode()      {}
func (*Return) stmtNode()      {}
func (*Expression) stmtNode()  {}
func (*If) stmtNode()          {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}

func (*Call) exprNode()      {}
func (*NumberLit) exprNode() {}
func (*StringLit) exprNode() {}
func (*Name) exprNode()      {}
