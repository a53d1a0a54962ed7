package driver

import (
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a single file and lexes it. Lexical errors go to Bag;
// the returned error is only for files that cannot be read.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, _, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(fs, file, maxDiagnostics), nil
}

// TokenizeFile lexes a file already present in fs (used for stdin input).
func TokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	tokens, _ := lexer.Tokenize(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
