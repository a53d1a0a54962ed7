package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/lexer"
	"github.com/redindelible/adze/internal/parser"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

func parseForDump(t *testing.T, text string) (*ast.File, []token.Token) {
	t.Helper()
	f := source.NewVirtual("main.adze", text)
	bag := diag.NewBag(0)
	toks, _ := lexer.Tokenize(f, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(f, toks, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.Zero(t, bag.Len(), diag.FormatShort(bag.Items(), false))
	return res.File, toks
}

func TestFormatASTPretty(t *testing.T) {
	file, _ := parseForDump(t, "struct Foo(a::Base) { x: Int&; }\nfn f(y: Int) -> Int { return y; }")

	var buf bytes.Buffer
	require.NoError(t, FormatASTPretty(&buf, file, nil))
	assert.Equal(t, lines(
		"File main.adze @1:1",
		"├─ Struct Foo @1:1",
		"│  ├─ super: QualifiedName a::Base @1:12",
		"│  └─ Field x @1:23",
		"│     └─ type: ReferenceType @1:26",
		"│        └─ NameType Int @1:26",
		"└─ Function f @2:1",
		"   ├─ Param y @2:6",
		"   │  └─ type: NameType Int @2:9",
		"   ├─ return: NameType Int @2:17",
		"   └─ body: Block @2:21",
		"      └─ ReturnStmt @2:23",
		"         └─ NameExpr y @2:30",
	), buf.String())
}

func TestFormatAST_Encodings(t *testing.T) {
	file, _ := parseForDump(t, "import std::io;\nstruct S<T> { v: (T) -> T; }")
	want := BuildASTOutput(file, nil)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatASTJSON(&buf, file, nil))
		var got ASTNodeOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("json dump mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatASTYAML(&buf, file, nil))
		assert.Contains(t, buf.String(), "type: Import")
		var got ASTNodeOutput
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("yaml dump mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("msgpack", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatASTMsgpack(&buf, file, nil))
		var got ASTNodeOutput
		require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("msgpack dump mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFormatTokens(t *testing.T) {
	_, toks := parseForDump(t, "fn f")

	var pretty bytes.Buffer
	require.NoError(t, FormatTokensPretty(&pretty, toks))
	assert.Equal(t, lines(
		`  1: Fn           "fn"       at 1:1+2`,
		`  2: Identifier   "f"        at 1:4+1 (space)`,
	), pretty.String())

	var packed bytes.Buffer
	require.NoError(t, FormatTokensMsgpack(&packed, toks, nil))
	var decoded []TokenOutput
	require.NoError(t, msgpack.Unmarshal(packed.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, TokenOutput{
		Kind:         "Identifier",
		Text:         "f",
		Location:     LocationJSON{File: "main.adze", Line: 1, Col: 4, Length: 1},
		LeadingSpace: true,
	}, decoded[1])

	var js bytes.Buffer
	require.NoError(t, FormatTokensJSON(&js, toks, nil))
	assert.Contains(t, js.String(), `"kind": "Fn"`)
}
