package ast

import (
	"github.com/redindelible/adze/internal/source"
)

// Program is the result of parsing an entry file and everything it imports.
// Files are in discovery order, the entry file first.
type Program struct {
	Files []*File
}

// Loc is the zero Location: a program spans several sources.
func (p *Program) Loc() source.Location { return source.Location{} }

// File is one parsed source.
type File struct {
	Source   *source.File
	Items    []TopLevel
	Location source.Location
}

func (f *File) Loc() source.Location { return f.Location }

// Imports returns the import items of f in declaration order.
func (f *File) Imports() []*Import {
	var out []*Import
	for _, it := range f.Items {
		if imp, ok := it.(*Import); ok {
			out = append(out, imp)
		}
	}
	return out
}
