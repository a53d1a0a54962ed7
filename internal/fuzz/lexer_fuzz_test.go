package fuzztests

import (
	"testing"
	"unicode/utf8"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		if !utf8.Valid(input) {
			t.Skip("source.Load rejects invalid UTF-8")
		}

		file := source.NewVirtual("fuzz.adze", string(input))
		bag := diag.NewBag(64)
		toks, errs := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		errorTokens := 0
		for _, tok := range toks {
			if tok.Kind == token.EOF {
				t.Fatalf("Tokenize returned an EOF token")
			}
			if tok.Kind == token.Error {
				errorTokens++
			}
			if tok.Loc.Length <= 0 {
				t.Fatalf("token %s has empty location %s", tok.Kind, tok.Loc)
			}
		}
		if errorTokens != errs {
			t.Fatalf("error tokens = %d, reported errors = %d", errorTokens, errs)
		}
	})
}
