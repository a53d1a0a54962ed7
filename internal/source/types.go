package source

import (
	"unicode/utf8"
)

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// LineRange is the half-open byte range of one physical line.
// Every range except the last one includes its trailing '\n'.
type LineRange struct {
	Start uint32
	End   uint32
}

// File captures metadata and content for a single source file.
// A File is immutable once constructed and is shared by pointer between
// every token and location that refers to it.
type File struct {
	Path  string // canonical absolute path, empty for virtual files
	Name  string // display name
	Text  string
	Lines []LineRange
	Hash  [32]byte
	Flags FileFlags
}

// Line returns the exact text of the zero-based line index, terminator included.
// The index must come from a valid location; out of range indices panic.
func (f *File) Line(index int) string {
	r := f.Lines[index]
	return f.Text[r.Start:r.End]
}

// LineCount returns the number of physical lines, always at least one.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// IsVirtual reports whether the file has no backing path on disk.
func (f *File) IsVirtual() bool {
	return f.Flags&FileVirtual != 0 || f.Path == ""
}

// lastLineWidth returns the number of characters on the final line.
func (f *File) lastLineWidth() int {
	return utf8.RuneCountInString(f.Line(len(f.Lines) - 1))
}

// SameFile reports whether a and b denote the same source. Identity is
// checked first, then the display name.
func SameFile(a, b *File) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name
}
