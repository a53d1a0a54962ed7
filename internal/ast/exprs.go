package ast

import (
	"github.com/redindelible/adze/internal/source"
)

type ExprStmt struct {
	X        Expr
	Location source.Location
}

type ReturnStmt struct {
	Value    Expr
	Location source.Location
}

// NameExpr uses a (possibly qualified) name as a value.
type NameExpr struct {
	Name     QualifiedName
	Location source.Location
}

// IntegerExpr is a decimal literal; Text keeps the source spelling.
type IntegerExpr struct {
	Value    uint64
	Text     string
	Location source.Location
}

// Block is `{ stmt* }`. It is both a function body and an expression.
type Block struct {
	Stmts    []Stmt
	Location source.Location
}

func (n *ExprStmt) Loc() source.Location    { return n.Location }
func (n *ReturnStmt) Loc() source.Location  { return n.Location }
func (n *NameExpr) Loc() source.Location    { return n.Location }
func (n *IntegerExpr) Loc() source.Location { return n.Location }
func (n *Block) Loc() source.Location       { return n.Location }

func (*ExprStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}

func (*NameExpr) exprNode()    {}
func (*IntegerExpr) exprNode() {}
func (*Block) exprNode()       {}
