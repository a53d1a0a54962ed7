package diag

import (
	"fmt"
	"sort"
	"strings"
)

// FormatShort renders diagnostics one per line as
// "<severity> <code> <location> <message>", sorted by position.
// Notes follow their parent, prefixed with "  note". The output is stable and
// is used by --quiet runs and by tests comparing diagnostics as text.
func FormatShort(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	bag := &Bag{items: append([]Diagnostic(nil), diags...)}
	bag.Sort()

	var b strings.Builder
	for i, d := range bag.Items() {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeShortLine(&b, "", d)
		if !includeNotes {
			continue
		}
		notes := append([]Diagnostic(nil), d.Notes...)
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Primary.Before(notes[j].Primary)
		})
		for _, n := range notes {
			b.WriteByte('\n')
			writeShortLine(&b, "  ", n)
		}
	}
	return b.String()
}

func writeShortLine(b *strings.Builder, indent string, d Diagnostic) {
	where := "-"
	if d.HasLocation() {
		where = d.Primary.String()
	}
	msg := strings.ReplaceAll(d.Message, "\n", " ")
	fmt.Fprintf(b, "%s%s %s %s %s", indent, d.Severity.Label(), d.Code.ID(), where, msg)
}
