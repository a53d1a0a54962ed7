// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Location the finding points at. The zero value means
//     the diagnostic has no position (for example, an unreadable entry file).
//   - Notes – nested sub-diagnostics, rendered one indentation level deeper.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The parser
// builds a ReportBuilder via ReportError and chains WithNote before Emit.
// BagReporter aggregates diagnostics into a Bag, which supports limits,
// sorting, deduplication and merging.
//
// Package diag does no rendering of its own apart from FormatShort; the
// source-excerpt renderer lives in internal/diagfmt.
package diag
