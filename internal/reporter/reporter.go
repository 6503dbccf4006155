// Package reporter implements the single diagnostic collector shared by
// the scanner, parser, and resolver. Each phase appends to the same
// Reporter rather than failing fast, so a run can surface every
// scan/parse/resolve problem at once; the caller only advances to the
// next phase when HasErrors is false.
package reporter

import "fmt"

// Phase names a stage of the pre-execution pipeline that can fail.
type Phase string

const (
	Scan    Phase = "Scan"
	Parse   Phase = "Parse"
	Resolve Phase = "Resolve"
)

// Diagnostic is one collected scan/parse/resolve problem.
type Diagnostic struct {
	Phase   Phase
	Line    int
	Where   string // optional context, e.g. " at 'foo'" or " at end"
	Message string
}

// String renders a Diagnostic the way scan/parse/resolve errors are
// printed to the user: "[line N] Error<context>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Reporter accumulates diagnostics across phases. The zero value is
// ready to use.
type Reporter struct {
	diagnostics []Diagnostic
}

// New returns an empty Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Report appends a diagnostic with no extra "where" context.
func (r *Reporter) Report(phase Phase, line int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Phase: phase, Line: line, Message: message})
}

// ReportAt appends a diagnostic with a "where" context, e.g. the
// offending lexeme or " at end".
func (r *Reporter) ReportAt(phase Phase, line int, where, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Phase: phase, Line: line, Where: where, Message: message})
}

// HasErrors reports whether anything has been collected.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns the diagnostics collected so far, in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Reset clears all collected diagnostics, for reuse across REPL lines.
func (r *Reporter) Reset() {
	r.diagnostics = r.diagnostics[:0]
}
