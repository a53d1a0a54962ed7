package ast

// Visitor is called for each node in depth-first order. Returning false
// skips the node's children.
type Visitor func(Node) bool

// Walk traverses the tree rooted at node. Children are visited in source
// order.
func Walk(node Node, visitor Visitor) {
	if node == nil || !visitor(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, f := range n.Files {
			Walk(f, visitor)
		}
	case *File:
		for _, it := range n.Items {
			Walk(it, visitor)
		}
	case *Import:
		Walk(n.Path, visitor)
	case *Struct:
		for _, g := range n.Generics {
			Walk(g, visitor)
		}
		if n.Super != nil {
			Walk(n.Super, visitor)
		}
		for _, i := range n.Interfaces {
			Walk(i, visitor)
		}
		for _, f := range n.Fields {
			Walk(f, visitor)
		}
	case *GenericParam:
		if n.Bound != nil {
			Walk(n.Bound, visitor)
		}
	case *StructField:
		Walk(n.Type, visitor)
	case *Function:
		for _, g := range n.Generics {
			Walk(g, visitor)
		}
		for _, p := range n.Params {
			Walk(p, visitor)
		}
		Walk(n.Return, visitor)
		if n.Body != nil {
			Walk(n.Body, visitor)
		}
	case *Param:
		Walk(n.Type, visitor)
	case *Namespace:
		Walk(n.Prefix, visitor)
	case *NameType:
		Walk(n.Name, visitor)
		for _, a := range n.GenericArgs {
			Walk(a, visitor)
		}
	case *FunctionType:
		for _, p := range n.Params {
			Walk(p, visitor)
		}
		Walk(n.Return, visitor)
	case *ReferenceType:
		Walk(n.Inner, visitor)
	case *ExprStmt:
		Walk(n.X, visitor)
	case *ReturnStmt:
		Walk(n.Value, visitor)
	case *NameExpr:
		Walk(n.Name, visitor)
	case *Block:
		for _, s := range n.Stmts {
			Walk(s, visitor)
		}
	}
}

// Collect returns every node of type T under root, in Walk order.
func Collect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}
