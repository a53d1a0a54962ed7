package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestDisplay_ErrorWithLocation(t *testing.T) {
	f := source.NewVirtual("main.adze", "struct ;\n")
	var buf bytes.Buffer
	d := NewDisplay(&buf, nil, PrettyOpts{})
	d.ErrorWithLocation("error", "unexpected token", source.NewLocation(f, 0, 7, 1))

	assert.Equal(t, lines(
		"error: unexpected token",
		" --> main.adze:1:8",
		"  |",
		"1 | struct ;",
		"  |        ^",
	), buf.String())
}

func TestDisplay_Underline(t *testing.T) {
	tests := []struct {
		name string
		text string
		loc  func(f *source.File) source.Location
		want string
	}{
		{
			name: "wide characters",
			text: "x: 世界;",
			loc:  func(f *source.File) source.Location { return source.NewLocation(f, 0, 3, 2) },
			want: "   ^^^^",
		},
		{
			name: "tabs",
			text: "\tfoo",
			loc:  func(f *source.File) source.Location { return source.NewLocation(f, 0, 1, 3) },
			want: "    ^^^",
		},
		{
			name: "multiline",
			text: "fn f() -> Int {\n}",
			loc: func(f *source.File) source.Location {
				return source.Location{File: f, Line: 0, Offset: 10, Length: 6, Multiline: true}
			},
			want: "          ^~~~~...",
		},
		{
			name: "end of file",
			text: "struct A {",
			loc:  func(f *source.File) source.Location { return source.EOFLocation(f) },
			want: "          ^",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := source.NewVirtual("u.adze", tt.text)
			loc := tt.loc(f)
			assert.Equal(t, tt.want, underline(strings.TrimRight(f.Line(loc.Line), "\n"), loc))
		})
	}
}

func TestDisplay_NestedNotes(t *testing.T) {
	f := source.NewVirtual("a.adze", "fn f() - > Int {}")
	item := diag.NewError(diag.SynExpected, source.NewLocation(f, 0, 7, 1), "Expected a '->'.").
		WithNote(source.NewLocation(f, 0, 0, 2), "function starts here")

	var buf bytes.Buffer
	NewDisplay(&buf, nil, PrettyOpts{ShowNotes: true}).Diagnostic(item)

	assert.Equal(t, lines(
		"error[SYN2002]: Expected a '->'.",
		" --> a.adze:1:8",
		"  |",
		"1 | fn f() - > Int {}",
		"  |        ^",
		"  | note: function starts here",
		"  |  --> a.adze:1:1",
		"  |   |",
		"  | 1 | fn f() - > Int {}",
		"  |   | ^^",
	), buf.String())
}

func TestDisplay_WithIndentRestores(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf, nil, PrettyOpts{})
	d.WithIndent(func() {
		d.WithIndent(func() { d.Message("note", "deep") })
		d.Message("note", "shallow")
	})
	d.Message("error", "top")
	assert.Equal(t, lines("  |   | note: deep", "  | note: shallow", "error: top"), buf.String())
}

func TestPretty(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSet()
	fs.SetBaseDir(dir)
	f := fs.AddVirtual("main.adze", "@\nstruct ;")

	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, source.NewLocation(f, 0, 0, 1), "unexpected character '@'"))
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Location{}, "lib.adze: file not found or unreadable"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.NewLocation(f, 1, 7, 1), "dropped by the limit"))

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, bag, fs, PrettyOpts{Summary: true}))
	assert.Equal(t, lines(
		"error[LEX1001]: unexpected character '@'",
		" --> main.adze:1:1",
		"  |",
		"1 | @",
		"  | ^",
		"",
		"error[IO4001]: lib.adze: file not found or unreadable",
		"",
		"2 errors, 0 warnings (1 more not shown)",
	), buf.String())
}

func TestJSON(t *testing.T) {
	f := source.NewVirtual("main.adze", "@")
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, source.NewLocation(f, 0, 0, 1), "unexpected character '@'"))

	out := BuildDiagnosticsOutput(bag, nil, JSONOpts{})
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, "ERROR", out.Diagnostics[0].Severity)
	assert.Equal(t, "LEX1001", out.Diagnostics[0].Code)
	assert.Equal(t, &LocationJSON{File: "main.adze", Line: 1, Col: 1, Length: 1}, out.Diagnostics[0].Location)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, bag, nil, JSONOpts{}))
	assert.Contains(t, buf.String(), `"code": "LEX1001"`)
}
