package diag

import (
	"github.com/redindelible/adze/internal/source"
)

// Diagnostic is one user-facing finding. Notes are sub-diagnostics rendered
// one indentation level deeper than their parent.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Location // zero value when the finding has no position
	Notes    []Diagnostic
}

func New(sev Severity, code Code, primary source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Location, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// HasLocation reports whether Primary points into a source file.
func (d Diagnostic) HasLocation() bool {
	return d.Primary.File != nil
}

// WithNote returns a copy of d with an extra nested note.
func (d Diagnostic) WithNote(loc source.Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Diagnostic{Severity: SevInfo, Code: d.Code, Primary: loc, Message: msg})
	return d
}

// Error implements error so a single diagnostic can travel as a Go error.
func (d Diagnostic) Error() string {
	if !d.HasLocation() {
		return d.Code.ID() + ": " + d.Message
	}
	return d.Primary.String() + ": " + d.Code.ID() + ": " + d.Message
}
