package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func qual(parts ...string) QualifiedName {
	var q QualifiedName = &Name{Name: parts[0]}
	for _, p := range parts[1:] {
		q = &Namespace{Prefix: q, Attr: p}
	}
	return q
}

func TestQualifiedName(t *testing.T) {
	q := qual("a", "b", "c")
	assert.Equal(t, "a::b::c", q.String())
	assert.Equal(t, []string{"a", "b", "c"}, Parts(q))

	ns, ok := q.(*Namespace)
	if assert.True(t, ok) {
		assert.Equal(t, "c", ns.Attr)
		assert.Equal(t, "a::b", ns.Prefix.String())
	}
}

func TestWalk_Order(t *testing.T) {
	fn := &Function{
		Name:   "f",
		Params: []*Param{{Name: "x", Type: &NameType{Name: qual("Int")}}},
		Return: &ReferenceType{Inner: &NameType{Name: qual("io", "File")}},
		Body: &Block{Stmts: []Stmt{
			&ReturnStmt{Value: &IntegerExpr{Value: 1, Text: "1"}},
		}},
	}
	st := &Struct{Name: "S", Super: qual("Base"), Fields: []*StructField{{Name: "y", Type: &NameType{Name: qual("Int")}}}}
	prog := &Program{Files: []*File{{Items: []TopLevel{&Import{Path: qual("lib")}, st, fn}}}}

	var seen []string
	Walk(prog, func(n Node) bool {
		seen = append(seen, fmt.Sprintf("%T", n))
		return true
	})
	assert.Equal(t, []string{
		"*ast.Program", "*ast.File",
		"*ast.Import", "*ast.Name",
		"*ast.Struct", "*ast.Name", "*ast.StructField", "*ast.NameType", "*ast.Name",
		"*ast.Function", "*ast.Param", "*ast.NameType", "*ast.Name",
		"*ast.ReferenceType", "*ast.NameType", "*ast.Namespace", "*ast.Name",
		"*ast.Block", "*ast.ReturnStmt", "*ast.IntegerExpr",
	}, seen)

	names := Collect[*NameType](prog)
	assert.Len(t, names, 3)
	assert.Len(t, prog.Files[0].Imports(), 1)
}

func TestWalk_SkipChildren(t *testing.T) {
	blk := &Block{Stmts: []Stmt{&ExprStmt{X: &NameExpr{Name: qual("x")}}}}
	count := 0
	Walk(blk, func(n Node) bool {
		count++
		_, isStmt := n.(Stmt)
		return !isStmt
	})
	assert.Equal(t, 2, count)
}
