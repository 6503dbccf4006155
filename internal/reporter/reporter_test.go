package reporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_StartsEmpty(t *testing.T) {
	r := New()
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.Diagnostics())
}

func TestReporter_ReportAccumulates(t *testing.T) {
	r := New()
	r.Report(Scan, 1, "Unexpected character.")
	r.Report(Parse, 2, "Expect expression.")
	assert.True(t, r.HasErrors())
	assert.Len(t, r.Diagnostics(), 2)
}

func TestDiagnostic_StringFormat(t *testing.T) {
	d := Diagnostic{Phase: Parse, Line: 5, Message: "Expect ';' after value."}
	assert.Equal(t, "[line 5] Error: Expect ';' after value.", d.String())
}

func TestDiagnostic_StringFormatWithWhere(t *testing.T) {
	d := Diagnostic{Phase: Parse, Line: 5, Where: " at 'foo'", Message: "Expect expression."}
	assert.Equal(t, "[line 5] Error at 'foo': Expect expression.", d.String())
}

func TestReporter_ReportAtRecordsWhere(t *testing.T) {
	r := New()
	r.ReportAt(Parse, 3, " at end", "Expect ')' after arguments.")
	diags := r.Diagnostics()
	require := diags[0]
	assert.Equal(t, " at end", require.Where)
	assert.Equal(t, "[line 3] Error at end: Expect ')' after arguments.", require.String())
}

func TestReporter_ResetClearsDiagnostics(t *testing.T) {
	r := New()
	r.Report(Scan, 1, "boom")
	r.Reset()
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.Diagnostics())
}
