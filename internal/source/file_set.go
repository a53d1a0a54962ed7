package source

import (
	"os"
	"path/filepath"
)

// FileSet is the append-only collection of every source loaded during a
// compilation run, indexed by canonical path.
type FileSet struct {
	files   []*File
	index   map[string]*File // canonical path -> file
	baseDir string           // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 0),
		index: make(map[string]*File),
	}
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir returns the directory used to shorten display paths.
// Defaults to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add appends f. Files with a path become visible to Lookup; a second file
// with the same canonical path replaces the index entry but both stay listed.
func (fileSet *FileSet) Add(f *File) *File {
	fileSet.files = append(fileSet.files, f)
	if f.Path != "" {
		fileSet.index[f.Path] = f
	}
	return f
}

// AddVirtual adds an in-memory file.
func (fileSet *FileSet) AddVirtual(name, text string) *File {
	return fileSet.Add(NewVirtual(name, text))
}

// Lookup returns the file previously loaded from the canonical path.
func (fileSet *FileSet) Lookup(canonical string) (*File, bool) {
	f, ok := fileSet.index[canonical]
	return f, ok
}

// Contains reports whether path, after canonicalization, is already loaded.
func (fileSet *FileSet) Contains(path string) bool {
	canonical, err := Canonicalize(path)
	if err != nil {
		return false
	}
	_, ok := fileSet.index[canonical]
	return ok
}

// Load reads path unless a file with the same canonical path is already
// present. The boolean result is true when a new file was added.
func (fileSet *FileSet) Load(path string) (*File, bool, error) {
	if canonical, err := Canonicalize(path); err == nil {
		if f, ok := fileSet.index[canonical]; ok {
			return f, false, nil
		}
	}
	f, err := Load(path)
	if err != nil {
		return nil, false, err
	}
	return fileSet.Add(f), true, nil
}

// Files returns the loaded files in load order. Do not modify the slice.
func (fileSet *FileSet) Files() []*File {
	return fileSet.files
}

// Len returns the number of loaded files.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// DisplayPath shortens f's name relative to the base directory when possible.
func (fileSet *FileSet) DisplayPath(f *File) string {
	if f == nil {
		return ""
	}
	if f.IsVirtual() {
		return f.Name
	}
	if rel, err := filepath.Rel(fileSet.BaseDir(), f.Path); err == nil && !startsWithDotDot(rel) {
		return filepath.ToSlash(rel)
	}
	return f.Name
}

func startsWithDotDot(rel string) bool {
	return rel == ".." || len(rel) > 3 && rel[:3] == ".."+string(filepath.Separator)
}
