package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

type TokenOutput struct {
	Kind         string       `json:"kind" msgpack:"kind"`
	Text         string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Location     LocationJSON `json:"location" msgpack:"location"`
	LeadingSpace bool         `json:"leading_space,omitempty" msgpack:"leading_space,omitempty"`
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:         tok.Kind.Ident(),
			Text:         tok.Text,
			Location:     makeLocation(tok.Loc, fs, PathModeAuto),
			LeadingSpace: tok.LeadingSpace,
		})
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		space := ""
		if tok.LeadingSpace {
			space = " (space)"
		}
		_, err := fmt.Fprintf(w, "%3d: %-12s %-10q at %d:%d+%d%s\n",
			i+1, tok.Kind.Ident(), tok.Text,
			tok.Loc.Line+1, tok.Loc.Offset+1, tok.Loc.Length, space)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, fs))
}

// FormatTokensMsgpack пишет токены в бинарном msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs))
}
