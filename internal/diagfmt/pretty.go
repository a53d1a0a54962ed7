package diagfmt

import (
	"fmt"
	"io"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее), между диагностиками
// пустая строка. Notes печатаются с отступом, если opts.ShowNotes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	d := NewDisplay(w, fs, opts)
	warnings := 0
	for i, item := range bag.Items() {
		if i > 0 {
			d.line("")
		}
		d.Diagnostic(item)
		if item.Severity == diag.SevWarning {
			warnings++
		}
	}
	if err := d.Err(); err != nil {
		return err
	}
	if !opts.Summary || bag.Len() == 0 {
		return nil
	}
	errs := bag.ErrorCount()
	summary := fmt.Sprintf("%s, %s", plural(errs, "error"), plural(warnings, "warning"))
	if dropped := bag.Dropped(); dropped > 0 {
		summary += fmt.Sprintf(" (%d more not shown)", dropped)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", summary)
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
