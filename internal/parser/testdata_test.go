package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/testkit"
)

func parseTestdata(t *testing.T, rel string) (*ast.File, *diag.Bag) {
	t.Helper()
	f, err := source.Load(filepath.Join("..", "..", "testdata", filepath.FromSlash(rel)))
	require.NoError(t, err)

	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	toks, lexErrs := lexer.Tokenize(f, lexer.Options{Reporter: reporter})
	require.Zero(t, lexErrs)

	res := ParseFile(f, toks, Options{Reporter: reporter})
	require.NoError(t, testkit.CheckLocations(res.File))
	return res.File, bag
}

func TestParse_TestdataClean(t *testing.T) {
	for _, rel := range []string{
		"shapes.adze",
		"program/main.adze",
		"program/geometry/point.adze",
		"program/geometry/ops.adze",
	} {
		t.Run(rel, func(t *testing.T) {
			file, bag := parseTestdata(t, rel)
			assert.Zero(t, bag.Len(), diag.FormatShort(bag.Items(), false))
			assert.NotEmpty(t, file.Items)
		})
	}
}

func TestParse_TestdataShapes(t *testing.T) {
	file, _ := parseTestdata(t, "shapes.adze")

	structs := ast.Collect[*ast.Struct](file)
	require.Len(t, structs, 3)
	assert.Equal(t, "Shape", structs[1].Super.String())
	assert.Equal(t, []string{"A", "B"}, []string{structs[2].Generics[0].Name, structs[2].Generics[1].Name})

	assert.Len(t, ast.Collect[*ast.FunctionType](file), 1)
	assert.Len(t, ast.Collect[*ast.ReferenceType](file), 2)
	assert.Len(t, ast.Collect[*ast.ReturnStmt](file), 1)
}

func TestParse_TestdataRecovery(t *testing.T) {
	file, bag := parseTestdata(t, "recovery.adze")

	assert.Equal(t, 2, bag.ErrorCount())
	var names []string
	for _, it := range file.Items {
		switch it := it.(type) {
		case *ast.Struct:
			names = append(names, it.Name)
		case *ast.Function:
			names = append(names, it.Name)
		}
	}
	assert.Equal(t, []string{"Good", "fine"}, names)
}
