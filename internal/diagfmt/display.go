package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

// tabWidth is how many columns a tab occupies in a rendered excerpt.
const tabWidth = 4

// Display is an indent-aware rendering context. Every line written while
// the indent level is n is prefixed with n copies of "  | ".
type Display struct {
	w      io.Writer
	fs     *source.FileSet
	opts   PrettyOpts
	indent int
	err    error

	level map[string]*color.Color
	gut   *color.Color
}

func NewDisplay(w io.Writer, fs *source.FileSet, opts PrettyOpts) *Display {
	d := &Display{
		w:    w,
		fs:   fs,
		opts: opts,
		level: map[string]*color.Color{
			"error":   color.New(color.FgRed, color.Bold),
			"warning": color.New(color.FgYellow, color.Bold),
			"note":    color.New(color.FgCyan, color.Bold),
		},
		gut: color.New(color.FgBlue, color.Bold),
	}
	for _, c := range d.level {
		setColor(c, opts.Color)
	}
	setColor(d.gut, opts.Color)
	return d
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Err returns the first write error, if any.
func (d *Display) Err() error {
	return d.err
}

// WithIndent runs fn one nesting level deeper.
func (d *Display) WithIndent(fn func()) {
	d.indent++
	defer func() { d.indent-- }()
	fn()
}

func (d *Display) line(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, strings.Repeat("  | ", d.indent)+s+"\n")
}

func (d *Display) label(level string) string {
	base := level
	if i := strings.IndexByte(level, '['); i > 0 {
		base = level[:i]
	}
	if c, ok := d.level[base]; ok {
		return c.Sprint(level)
	}
	return level
}

// Message writes a diagnostic header without a source excerpt.
func (d *Display) Message(level, msg string) {
	d.line(d.label(level) + ": " + msg)
}

// ErrorWithLocation writes:
//
//	error: <message>
//	 --> <name>:<line>:<col>
//	  |
//	3 | <source line>
//	  |     ^^^^
//
// Multi-line spans underline from the start column to the end of the first
// line as ^~~~ followed by "...".
func (d *Display) ErrorWithLocation(level, msg string, loc source.Location) {
	d.Message(level, msg)
	if loc.File == nil {
		return
	}

	lineNo := strconv.Itoa(loc.Line + 1)
	pad := strings.Repeat(" ", len(lineNo))
	bar := d.gut.Sprint("|")

	d.line(fmt.Sprintf("%s%s %s:%d:%d", pad, d.gut.Sprint("-->"), d.displayName(loc.File), loc.Line+1, loc.Offset+1))
	d.line(pad + " " + bar)

	text := ""
	if loc.Line < loc.File.LineCount() {
		text = strings.TrimRight(loc.File.Line(loc.Line), "\n")
	}
	d.line(d.gut.Sprint(lineNo) + " " + bar + " " + expandTabs(text))
	d.line(pad + " " + bar + " " + underline(text, loc))
}

// Diagnostic renders d and its notes, each note one level deeper.
func (d *Display) Diagnostic(item diag.Diagnostic) {
	level := item.Severity.Label()
	if item.Severity != diag.SevInfo {
		level += "[" + item.Code.ID() + "]"
	}
	if item.HasLocation() {
		d.ErrorWithLocation(level, item.Message, item.Primary)
	} else {
		d.Message(level, item.Message)
	}
	if !d.opts.ShowNotes || len(item.Notes) == 0 {
		return
	}
	d.WithIndent(func() {
		for _, n := range item.Notes {
			d.Diagnostic(n)
		}
	})
}

func (d *Display) displayName(f *source.File) string {
	if f == nil {
		return ""
	}
	switch d.opts.PathMode {
	case PathModeAbsolute:
		if f.Path != "" {
			return f.Path
		}
	case PathModeBasename:
		return filepath.Base(f.Name)
	case PathModeAuto:
		if d.fs != nil {
			return d.fs.DisplayPath(f)
		}
	}
	return f.Name
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// columns is the display width of s after tab expansion.
func columns(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}

// underline builds the caret line for loc against the line text.
func underline(text string, loc source.Location) string {
	runes := []rune(text)
	start := min(loc.Offset, len(runes))
	before := columns(string(runes[:start]))

	if loc.Multiline {
		rest := max(columns(string(runes[start:])), 1)
		return strings.Repeat(" ", before) + "^" + strings.Repeat("~", rest-1) + "..."
	}

	end := min(start+loc.Length, len(runes))
	width := max(columns(string(runes[start:end])), 1)
	return strings.Repeat(" ", before) + strings.Repeat("^", width)
}
