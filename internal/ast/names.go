package ast

import (
	"github.com/redindelible/adze/internal/source"
)

// Name is a single identifier.
type Name struct {
	Name     string
	Location source.Location
}

// Namespace is `Prefix::Attr`. `a::b::c` nests to the left:
// Namespace{Prefix: Namespace{Prefix: Name{a}, Attr: b}, Attr: c}.
type Namespace struct {
	Prefix   QualifiedName
	Attr     string
	Location source.Location
}

func (n *Name) Loc() source.Location      { return n.Location }
func (n *Namespace) Loc() source.Location { return n.Location }

func (*Name) qualifiedNameNode()      {}
func (*Namespace) qualifiedNameNode() {}

func (n *Name) String() string { return n.Name }

func (n *Namespace) String() string {
	return n.Prefix.String() + "::" + n.Attr
}

// Parts flattens a qualified name into its segments, outermost first.
func Parts(q QualifiedName) []string {
	switch n := q.(type) {
	case *Name:
		return []string{n.Name}
	case *Namespace:
		return append(Parts(n.Prefix), n.Attr)
	}
	return nil
}
