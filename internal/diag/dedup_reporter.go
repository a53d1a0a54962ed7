package diag

import "github.com/redindelible/adze/internal/source"

type dedupKey struct {
	code   Code
	sev    Severity
	file   string
	line   int
	offset int
	length int
	msg    string
}

// DedupReporter wraps another Reporter and suppresses duplicate diagnostics
// with the same code, severity, primary location and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Location, msg string, notes []Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{
		code:   code,
		sev:    sev,
		line:   primary.Line,
		offset: primary.Offset,
		length: primary.Length,
		msg:    msg,
	}
	if primary.File != nil {
		key.file = primary.File.Name
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
