// Package ast defines the syntax tree produced by the parser.
//
// Nodes are pointer-linked and owned top-down: a Program owns its Files, a
// File owns its items, and so on. The parser builds a tree once and nothing
// mutates it afterwards. Every node reports the source span it covers via
// Loc; the span of a parent is the Combine of its first and last tokens.
//
// The variant families (TopLevel, QualifiedName, Type, Stmt, Expr) are
// sealed interfaces: only types in this package implement them.
package ast

import (
	"github.com/redindelible/adze/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Loc() source.Location
}

// TopLevel is an item that may appear at file scope.
type TopLevel interface {
	Node
	topLevelNode()
}

// QualifiedName is either a bare Name or a Namespace access.
type QualifiedName interface {
	Node
	qualifiedNameNode()
	// String renders the name with '::' separators.
	String() string
}

// Type is a type expression.
type Type interface {
	Node
	typeNode()
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}
