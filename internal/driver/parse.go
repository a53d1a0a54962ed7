package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/observ"
	"github.com/redindelible/adze/internal/parser"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File // nil when the file had lexical errors
	Bag     *diag.Bag
}

// Parse lexes and parses a single file without following its imports.
// Unlike ParseProgram, the recovered AST is returned even when the parser
// reported errors, which is what the tree dump wants.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	file, _, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(fs, file, maxDiagnostics)
}

// ParseSource parses a file already present in fs.
func ParseSource(fs *source.FileSet, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}

	parsed, _, err := parseOne(context.Background(), file, bag, maxDiagnostics, nil)
	if err != nil {
		return nil, err
	}
	res.AST = parsed
	return res, nil
}

// parseOne lexes and parses file into bag. ok is false when any error was
// reported; the AST is nil only when lexing failed.
func parseOne(ctx context.Context, file *source.File, bag *diag.Bag, maxDiagnostics int, timer *observ.Timer) (*ast.File, bool, error) {
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()

	_, lexSpan := trace.Start(ctx, trace.ScopePass, "lex")
	stopLex := timer.Track("lex")
	tokens, lexErrors := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	stopLex("")
	lexSpan.End(fmt.Sprintf("%d tokens, %d errors", len(tokens), lexErrors))
	if lexErrors > 0 {
		return nil, false, nil
	}

	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, false, err
	}
	current, err := safecast.Conv[uint](bag.ErrorCount())
	if err != nil {
		return nil, false, err
	}

	_, parseSpan := trace.Start(ctx, trace.ScopePass, "parse")
	stopParse := timer.Track("parse")
	result := parser.ParseFile(file, tokens, parser.Options{
		Reporter:      reporter,
		MaxErrors:     maxErrors,
		CurrentErrors: current,
	})
	stopParse("")
	parseSpan.End(fmt.Sprintf("%d items, %d errors", len(result.File.Items), result.Errors))
	return result.File, result.Errors == 0, nil
}
