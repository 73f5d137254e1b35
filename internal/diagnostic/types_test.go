package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddInfo("properties", "12 properties", "order", "").Suggest("nothing to do")
	d.AddWarning("sequence-of-records", "fields cannot be located", "order", "items").
		Suggest("locate %s as a whole", "items")

	var other Diagnostics
	other.AddError("not-reflectable", "no sentinel pair", "envelope", "payload")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, []string{"locate items as a whole"}, d.Warnings[0].Suggestions)

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)

	assert.EqualError(t, d.Error(), "[envelope] payload: [not-reflectable] no sentinel pair")

	serious := d.AtLeast(DiagnosticWarning)
	require.Len(t, serious, 2)
	assert.Equal(t, "not-reflectable", serious[0].Code)
	assert.Equal(t, "sequence-of-records", serious[1].Code)
	assert.Empty(t, (&Diagnostics{}).AtLeast(DiagnosticInfo))

	d.AddError("probe-failed", "decode failed", "order", "").Suggest("check %s", "DecodeFrom")
	assert.EqualError(t, d.Error(),
		"[envelope] payload: [not-reflectable] no sentinel pair\n[order]: [probe-failed] decode failed")
	assert.Equal(t, "[properties] 12 properties", Diagnostic{Code: "properties", Message: "12 properties"}.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
