package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolStderr_LocatedMessages(t *testing.T) {
	stderr := []byte(`src/app.py:12: warning: unterminated string literal
src/app.py:40:8: invalid multibyte sequence
`)

	diags := ParseToolStderr(stderr)
	require.Len(t, diags, 2)

	assert.Equal(t, Diagnostic{
		Severity: SeverityWarning,
		File:     "src/app.py",
		Line:     12,
		Message:  "unterminated string literal",
	}, diags[0])

	assert.Equal(t, Diagnostic{
		Severity: SeverityError,
		File:     "src/app.py",
		Line:     40,
		Message:  "invalid multibyte sequence",
	}, diags[1])
}

func TestParseToolStderr_ToolPrefixCarriesNoLocation(t *testing.T) {
	diags := ParseToolStderr([]byte("xgettext: warning: file 'a.xyz' extension 'xyz' is unknown; will try C\n"))
	require.Len(t, diags, 1)

	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Empty(t, diags[0].File)
	assert.Equal(t, "file 'a.xyz' extension 'xyz' is unknown; will try C", diags[0].Message)
}

func TestParseToolStderr_ContinuationLines(t *testing.T) {
	stderr := []byte(`src/main.c:7: error: something went wrong
    in the middle of a macro
`)

	diags := ParseToolStderr(stderr)
	require.Len(t, diags, 1)
	assert.Equal(t, "something went wrong in the middle of a macro", diags[0].Message)
	assert.Equal(t, SeverityError, diags[0].Severity)
}

func TestParseToolStderr_Empty(t *testing.T) {
	assert.Empty(t, ParseToolStderr(nil))
	assert.Empty(t, ParseToolStderr([]byte("\n\n")))
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, File: "a.py", Line: 3, Message: "msg"}
	assert.Equal(t, "a.py:3: warning: msg", d.String())

	d = Diagnostic{Severity: SeverityError, Message: "msg"}
	assert.Equal(t, "error: msg", d.String())
}
