package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redindelible/adze/internal/source"
)

func TestFormatShort(t *testing.T) {
	f := source.NewVirtual("testdata/sample.adze", "fn f()\n  struct\n")

	second := NewError(SynExpected, source.NewLocation(f, 1, 2, 6), "Expected a '{'.").
		WithNote(source.NewLocation(f, 0, 0, 2), "function starts here")
	first := NewError(SynUnexpectedToken, source.NewLocation(f, 0, 3, 1), "first\nline")

	got := FormatShort([]Diagnostic{second, first}, true)
	want := "error SYN2001 testdata/sample.adze:1:4 first line\n" +
		"error SYN2002 testdata/sample.adze:2:3 Expected a '{'.\n" +
		"  note SYN2002 testdata/sample.adze:1:1 function starts here"
	assert.Equal(t, want, got)

	assert.Equal(t, "error SYN2001 testdata/sample.adze:1:4 first line\n"+
		"error SYN2002 testdata/sample.adze:2:3 Expected a '{'.",
		FormatShort([]Diagnostic{second, first}, false))
	assert.Empty(t, FormatShort(nil, true))
}

func TestFormatShort_NoLocation(t *testing.T) {
	d := NewError(IOLoadFileError, source.Location{}, "missing.adze: file is unreadable")
	assert.Equal(t, "error IO4001 - missing.adze: file is unreadable", FormatShort([]Diagnostic{d}, false))
}
