package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

func TestParse_Items(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.TopLevel
	}{
		{
			name:  "struct with one field",
			input: "struct Foo { x: Int; }",
			want: []ast.TopLevel{&ast.Struct{
				Name:   "Foo",
				Fields: []*ast.StructField{{Name: "x", Type: nameType("Int")}},
			}},
		},
		{
			name:  "function returning a literal",
			input: "fn f() -> Int { return 0; }",
			want: []ast.TopLevel{&ast.Function{
				Name:   "f",
				Return: nameType("Int"),
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ReturnStmt{Value: &ast.IntegerExpr{Value: 0, Text: "0"}},
				}},
			}},
		},
		{
			name:  "generics, trailing comma and superstruct",
			input: "struct Pair<A, B,>(base::Pair) { a: A; b: B&; }",
			want: []ast.TopLevel{&ast.Struct{
				Name:     "Pair",
				Generics: []*ast.GenericParam{{Name: "A"}, {Name: "B"}},
				Super:    name("base", "Pair"),
				Fields: []*ast.StructField{
					{Name: "a", Type: nameType("A")},
					{Name: "b", Type: &ast.ReferenceType{Inner: nameType("B")}},
				},
			}},
		},
		{
			name:  "function type parameter",
			input: "fn apply<T>(cb: (Int, a::B) -> Int&, x: T) -> T { x; }",
			want: []ast.TopLevel{&ast.Function{
				Name:     "apply",
				Generics: []*ast.GenericParam{{Name: "T"}},
				Params: []*ast.Param{
					{Name: "cb", Type: &ast.FunctionType{
						Params: []ast.Type{nameType("Int"), nameType("a", "B")},
						Return: &ast.ReferenceType{Inner: nameType("Int")},
					}},
					{Name: "x", Type: nameType("T")},
				},
				Return: nameType("T"),
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.NameExpr{Name: name("x")}},
				}},
			}},
		},
		{
			name:  "imports and nested blocks",
			input: "import std::io;\nfn main() -> Unit {\n  { (42); };\n  return io::unit;\n}",
			want: []ast.TopLevel{
				&ast.Import{Path: name("std", "io")},
				&ast.Function{
					Name:   "main",
					Return: nameType("Unit"),
					Body: &ast.Block{Stmts: []ast.Stmt{
						&ast.ExprStmt{X: &ast.Block{Stmts: []ast.Stmt{
							&ast.ExprStmt{X: &ast.IntegerExpr{Value: 42, Text: "42"}},
						}}},
						&ast.ReturnStmt{Value: &ast.NameExpr{Name: name("io", "unit")}},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, bag, res := parseString(t, tt.input, Options{})
			require.Zero(t, bag.Len(), "unexpected diagnostics: %s", diag.FormatShort(bag.Items(), false))
			assert.Zero(t, res.Errors)
			if diff := cmp.Diff(tt.want, file.Items, astOpts); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Locations(t *testing.T) {
	file, _, _ := parseString(t, "struct Foo { x: Int; }\nfn f() -> Int {\n  return 0;\n}", Options{})
	require.Len(t, file.Items, 2)

	st := file.Items[0].(*ast.Struct)
	assert.Equal(t, source.Location{File: st.Location.File, Line: 0, Offset: 0, Length: 22}, st.Location)
	field := st.Fields[0]
	assert.Equal(t, 13, field.Location.Offset)
	assert.Equal(t, 6, field.Location.Length)

	fn := file.Items[1].(*ast.Function)
	assert.Equal(t, 1, fn.Location.Line)
	assert.True(t, fn.Location.Multiline)
	assert.True(t, fn.Body.Location.Multiline)

	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	assert.Equal(t, "test.adze:3:3", ret.Location.String())
	assert.Equal(t, 9, ret.Location.Length)
	assert.False(t, ret.Location.Multiline)
}

func TestParse_Diagnostics(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantItems []string
		wantDiags string
	}{
		{
			name:      "recovers at the next struct",
			input:     "struct ;\nstruct Bar {}",
			wantItems: []string{"Bar"},
			wantDiags: "error SYN2001 test.adze:1:8 unexpected token: got ';', expected identifier",
		},
		{
			name:      "spaced arrow is not an arrow",
			input:     "fn f() - > Int {}",
			wantDiags: "error SYN2002 test.adze:1:8 Expected a '->'.",
		},
		{
			name:      "spaced path separator",
			input:     "import a: :b;\nstruct S {}",
			wantItems: []string{"S"},
			wantDiags: "error SYN2001 test.adze:1:9 unexpected token: got ':', expected ';'",
		},
		{
			name:      "unexpected top level",
			input:     "; struct A {}",
			wantItems: []string{"A"},
			wantDiags: "error SYN2004 test.adze:1:1 Expected the start of a struct, function, or import.",
		},
		{
			name:      "bad statement keeps the block",
			input:     "fn f() -> Int { 1 2; return 3; }",
			wantItems: []string{"f"},
			wantDiags: "error SYN2001 test.adze:1:19 unexpected token: got integer, expected ';'",
		},
		{
			name:      "literal out of range",
			input:     "fn f() -> Int { return 99999999999999999999; }",
			wantItems: []string{"f"},
			wantDiags: `error SYN2003 test.adze:1:24 could not parse literal "99999999999999999999"`,
		},
		{
			name:      "missing expression",
			input:     "fn f() -> Int { return ; }",
			wantItems: []string{"f"},
			wantDiags: "error SYN2002 test.adze:1:24 Expected an expression.",
		},
		{
			name:      "end of file inside struct",
			input:     "struct A {",
			wantDiags: "error SYN2001 test.adze:1:11 unexpected token: got end of file, expected identifier",
		},
		{
			name:      "empty file",
			input:     "",
			wantDiags: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, bag, res := parseString(t, tt.input, Options{})
			var got []string
			for _, it := range file.Items {
				switch n := it.(type) {
				case *ast.Struct:
					got = append(got, n.Name)
				case *ast.Function:
					got = append(got, n.Name)
				case *ast.Import:
					got = append(got, n.Path.String())
				}
			}
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, tt.wantDiags, diag.FormatShort(bag.Items(), false))
			assert.Equal(t, uint(bag.Len()), res.Errors)
		})
	}
}

func TestParse_BadStatementBody(t *testing.T) {
	file, _, _ := parseString(t, "fn f() -> Int { 1 2; return 3; }", Options{})
	fn := file.Items[0].(*ast.Function)
	want := []ast.Stmt{&ast.ReturnStmt{Value: &ast.IntegerExpr{Value: 3, Text: "3"}}}
	if diff := cmp.Diff(want, fn.Body.Stmts, astOpts); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MaxErrors(t *testing.T) {
	input := "struct ; struct ; struct ; struct A {}"
	_, bag, res := parseString(t, input, Options{MaxErrors: 1})
	assert.Equal(t, 1, bag.Len())
	assert.Equal(t, uint(3), res.Errors)
}
