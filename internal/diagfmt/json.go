package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON.
// Line и Col 1-based, Length в символах.
type LocationJSON struct {
	File      string `json:"file" yaml:"file" msgpack:"file"`
	Line      int    `json:"line" yaml:"line" msgpack:"line"`
	Col       int    `json:"col" yaml:"col" msgpack:"col"`
	Length    int    `json:"length" yaml:"length" msgpack:"length"`
	Multiline bool   `json:"multiline,omitempty" yaml:"multiline,omitempty" msgpack:"multiline,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string           `json:"severity"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Location *LocationJSON    `json:"location,omitempty"`
	Notes    []DiagnosticJSON `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// makeLocation создаёт LocationJSON из Location
func makeLocation(loc source.Location, fs *source.FileSet, pathMode PathMode) LocationJSON {
	d := Display{fs: fs, opts: PrettyOpts{PathMode: pathMode}}
	return LocationJSON{
		File:      d.displayName(loc.File),
		Line:      loc.Line + 1,
		Col:       loc.Offset + 1,
		Length:    loc.Length,
		Multiline: loc.Multiline,
	}
}

func makeDiagnostic(d diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
	}
	if d.HasLocation() {
		loc := makeLocation(d.Primary, fs, opts.PathMode)
		out.Location = &loc
	}
	if opts.IncludeNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, makeDiagnostic(n, fs, opts))
		}
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		diagnostics = append(diagnostics, makeDiagnostic(items[i], fs, opts))
	}
	return DiagnosticsOutput{Diagnostics: diagnostics, Count: bag.Len()}
}

// JSON пишет диагностики в w с отступами.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
