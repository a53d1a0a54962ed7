package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/source"
)

// parseString lexes and parses input as test.adze. Lexical errors fail the
// test: parser tests feed only well-formed token streams.
func parseString(t *testing.T, input string, opts Options) (*ast.File, *diag.Bag, Result) {
	t.Helper()
	f := source.NewVirtual("test.adze", input)

	bag := diag.NewBag(0)
	toks, lexErrs := lexer.Tokenize(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.Zero(t, lexErrs, "lexer diagnostics: %s", diag.FormatShort(bag.Items(), false))

	opts.Reporter = diag.BagReporter{Bag: bag}
	res := ParseFile(f, toks, opts)
	require.NotNil(t, res.File)
	require.Same(t, f, res.File.Source)
	return res.File, bag, res
}

// astOpts compares trees by shape, ignoring source spans.
var astOpts = cmp.Options{
	cmpopts.IgnoreTypes(source.Location{}),
	cmpopts.EquateEmpty(),
}

func name(parts ...string) ast.QualifiedName {
	var q ast.QualifiedName = &ast.Name{Name: parts[0]}
	for _, p := range parts[1:] {
		q = &ast.Namespace{Prefix: q, Attr: p}
	}
	return q
}

func nameType(parts ...string) *ast.NameType {
	return &ast.NameType{Name: name(parts...)}
}
