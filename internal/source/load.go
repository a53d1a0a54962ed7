package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrUnreadable is wrapped by every Load failure: the path could not be
// canonicalized, opened, read, or is not valid UTF-8 text.
var ErrUnreadable = errors.New("file not found or unreadable")

// NewFile builds a File from already normalized content.
func NewFile(path, name string, content []byte, flags FileFlags) *File {
	text := string(content)
	return &File{
		Path:  path,
		Name:  name,
		Text:  text,
		Lines: buildLineRanges(text),
		Hash:  sha256.Sum256(content),
		Flags: flags,
	}
}

// NewVirtual adds an in-memory source (stdin, tests, generated code).
func NewVirtual(name, text string) *File {
	return NewFile("", name, []byte(text), FileVirtual)
}

// Load canonicalizes path, reads the file, strips a BOM and normalizes CRLF.
// The display name is the canonical path.
func Load(path string) (*File, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUnreadable, err)
	}
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(canonical)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUnreadable, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w: invalid UTF-8", path, ErrUnreadable)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(canonical, canonical, content, flags), nil
}
