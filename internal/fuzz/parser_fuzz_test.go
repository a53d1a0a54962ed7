package fuzztests

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/parser"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, recovery is likely looping.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang checks that parsing terminates and that whatever the
// parser recovered still has consistent locations.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// recovery edge cases
	f.Add([]byte("fn f() -> Int { { { { } } } }"))
	f.Add([]byte("fn f() -> Int { return }"))
	f.Add([]byte("struct struct struct"))
	f.Add([]byte("fn f(a: Int b: Int) - > Int {}"))
	f.Add([]byte("};};};"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)
		if !utf8.Valid(input) {
			t.Skip("source.Load rejects invalid UTF-8")
		}

		done := make(chan error, 1)
		go func() {
			file := source.NewVirtual("fuzz.adze", string(input))
			bag := diag.NewBag(128)
			reporter := diag.BagReporter{Bag: bag}
			toks, _ := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

			res := parser.ParseFile(file, toks, parser.Options{Reporter: reporter, MaxErrors: 128})
			done <- testkit.CheckLocations(res.File)
		}()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("location invariant broken: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
