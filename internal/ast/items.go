package ast

import (
	"github.com/redindelible/adze/internal/source"
)

// Import names another source file: `import a::b;`.
type Import struct {
	Path     QualifiedName
	Location source.Location
}

// Struct is a struct declaration. Super is nil when there is no
// superstruct clause. Interfaces is never populated by the parser.
type Struct struct {
	Name       string
	Generics   []*GenericParam
	Super      QualifiedName
	Interfaces []QualifiedName
	Fields     []*StructField
	Location   source.Location
}

// GenericParam is one name in a `<...>` parameter list. Bound is reserved
// and always nil.
type GenericParam struct {
	Name     string
	Bound    Type
	Location source.Location
}

type StructField struct {
	Name     string
	Type     Type
	Location source.Location
}

// Function is a function declaration with a mandatory return type and body.
type Function struct {
	Name     string
	Generics []*GenericParam
	Params   []*Param
	Return   Type
	Body     *Block
	Location source.Location
}

type Param struct {
	Name     string
	Type     Type
	Location source.Location
}

func (n *Import) Loc() source.Location       { return n.Location }
func (n *Struct) Loc() source.Location       { return n.Location }
func (n *GenericParam) Loc() source.Location { return n.Location }
func (n *StructField) Loc() source.Location  { return n.Location }
func (n *Function) Loc() source.Location     { return n.Location }
func (n *Param) Loc() source.Location        { return n.Location }

func (*Import) topLevelNode()   {}
func (*Struct) topLevelNode()   {}
func (*Function) topLevelNode() {}
