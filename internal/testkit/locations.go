// Package testkit holds assertions shared by parser, driver and fuzz tests.
package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/source"
)

// CheckLocations runs a minimal set of location invariants on a parsed file:
// 1) every node location points into f.Source, on an existing line
// 2) single-line locations are non-empty and end at most one past the line
// 3) every top-level item starts no earlier than the file location
func CheckLocations(f *ast.File) error {
	if f == nil || f.Source == nil {
		return fmt.Errorf("nil file or source")
	}
	src := f.Source

	var firstErr error
	ast.Walk(f, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		if err := checkLocation(src, n.Loc()); err != nil {
			firstErr = fmt.Errorf("%T: %w", n, err)
			return false
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}

	for _, it := range f.Items {
		if it.Loc().Before(f.Location) {
			return fmt.Errorf("%T at %s starts before file location %s", it, it.Loc(), f.Location)
		}
	}
	return nil
}

func checkLocation(src *source.File, loc source.Location) error {
	if loc.File == nil {
		return fmt.Errorf("location has no file")
	}
	if !source.SameFile(loc.File, src) {
		return fmt.Errorf("location points to %q, want %q", loc.File.Name, src.Name)
	}
	if loc.Line < 0 || loc.Line >= src.LineCount() {
		return fmt.Errorf("line %d out of range [0, %d)", loc.Line, src.LineCount())
	}
	if loc.Offset < 0 {
		return fmt.Errorf("negative offset %d", loc.Offset)
	}
	if loc.Multiline {
		return nil
	}
	if loc.Length <= 0 {
		return fmt.Errorf("empty location %s", loc)
	}
	// EOF sits one column past the last character
	width := utf8.RuneCountInString(strings.TrimSuffix(src.Line(loc.Line), "\n"))
	if loc.End() > width+1 {
		return fmt.Errorf("location %s+%d runs past line width %d", loc, loc.Length, width)
	}
	return nil
}
