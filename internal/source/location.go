package source

import (
	"fmt"
)

// Location is a span inside one line-oriented view of a File.
// Offset and Length are counted in characters (runes), not bytes.
type Location struct {
	File      *File
	Line      int // 0-based
	Offset    int // 0-based column within Line
	Length    int
	Multiline bool
}

// NewLocation builds a single-line location.
func NewLocation(f *File, line, offset, length int) Location {
	return Location{File: f, Line: line, Offset: offset, Length: length}
}

// EOFLocation points one past the last character of f with length 1.
func EOFLocation(f *File) Location {
	return Location{
		File:   f,
		Line:   len(f.Lines) - 1,
		Offset: f.lastLineWidth(),
		Length: 1,
	}
}

// End returns the column one past the last character of the span.
func (l Location) End() int {
	return l.Offset + l.Length
}

// Before reports whether l starts strictly before other in (line, offset) order.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Offset < other.Offset
}

// Combine returns the minimal span covering both l and other.
// Both locations must refer to the same file; combining spans from
// different files is a parser bug and panics.
func (l Location) Combine(other Location) Location {
	if !SameFile(l.File, other.File) {
		panic(fmt.Errorf("source: cannot combine locations from %q and %q", fileName(l.File), fileName(other.File)))
	}
	first := l
	if other.Before(l) {
		first = other
	}
	start := min(l.Offset, other.Offset)
	end := max(l.End(), other.End())
	return Location{
		File:      l.File,
		Line:      min(l.Line, other.Line),
		Offset:    first.Offset,
		Length:    end - start,
		Multiline: l.Line != other.Line || l.Multiline || other.Multiline,
	}
}

// String renders the location as name:line:col with 1-based numbers.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", fileName(l.File), l.Line+1, l.Offset+1)
}

func fileName(f *File) string {
	if f == nil {
		return "<nil>"
	}
	return f.Name
}
