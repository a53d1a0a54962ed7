package ast

import (
	"github.com/redindelible/adze/internal/source"
)

// NameType refers to a type by name. GenericArgs is nil when no argument
// list was written; the parser does not populate it yet.
type NameType struct {
	Name        QualifiedName
	GenericArgs []Type
	Location    source.Location
}

// FunctionType is `(A, B) -> R`.
type FunctionType struct {
	Params   []Type
	Return   Type
	Location source.Location
}

// ReferenceType is `T&`.
type ReferenceType struct {
	Inner    Type
	Location source.Location
}

func (n *NameType) Loc() source.Location      { return n.Location }
func (n *FunctionType) Loc() source.Location  { return n.Location }
func (n *ReferenceType) Loc() source.Location { return n.Location }

func (*NameType) typeNode()      {}
func (*FunctionType) typeNode()  {}
func (*ReferenceType) typeNode() {}
