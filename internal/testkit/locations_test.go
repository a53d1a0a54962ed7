package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/source"
)

func TestCheckLocations(t *testing.T) {
	src := source.NewVirtual("k.adze", "struct A {}\n")
	file := &ast.File{Source: src, Location: source.NewLocation(src, 0, 0, 11)}
	st := &ast.Struct{Name: "A", Location: source.NewLocation(src, 0, 0, 11)}
	file.Items = []ast.TopLevel{st}
	require.NoError(t, CheckLocations(file))

	st.Location = source.NewLocation(src, 0, 4, 20)
	assert.ErrorContains(t, CheckLocations(file), "runs past line width")

	st.Location = source.NewLocation(src, 3, 0, 1)
	assert.ErrorContains(t, CheckLocations(file), "line 3 out of range")

	other := source.NewVirtual("other.adze", "struct A {}\n")
	st.Location = source.NewLocation(other, 0, 0, 1)
	assert.ErrorContains(t, CheckLocations(file), `points to "other.adze"`)

	st.Location = source.Location{}
	assert.ErrorContains(t, CheckLocations(file), "*ast.Struct: location has no file")

	assert.Error(t, CheckLocations(nil))
}
