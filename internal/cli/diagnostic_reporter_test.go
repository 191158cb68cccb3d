package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/utils"
)

func newTestReporter(out io.Writer, verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{out: out, verbose: verbose}
}

func TestDiagnosticReporter_Locations(t *testing.T) {
	errs := errors.NewMultipleErrors()
	errs.Add(errors.New(errors.ModifierErrorCode, "@InjectView fields must not be private or static. (test.Test.thing)").
		WithLocation(errors.SourceLocation{File: "test/Test.java", Line: 6, Column: 22}))
	errs.Add(errors.New(errors.GenerationErrorCode, "failed to generate test.Test"))

	var buf bytes.Buffer
	newTestReporter(&buf, false).ReportDiagnostics(errs)
	assert.Equal(t,
		"test/Test.java:6:22: error: @InjectView fields must not be private or static. (test.Test.thing)\n"+
			"error: failed to generate test.Test\n",
		buf.String())
}

func TestDiagnosticReporter_ReportDiagnostics(t *testing.T) {
	errs := errors.NewMultipleErrors()
	errs.Add(errors.New(errors.SignatureErrorCode, "first").
		WithLocation(errors.SourceLocation{File: "A.java", Line: 3, Column: 5}).
		WithSuggestion("change the return type"))
	errs.Add(errors.New(errors.DataErrorCode, "second").
		WithLocation(errors.SourceLocation{File: "B.java", Line: 9}))

	var buf bytes.Buffer
	count := newTestReporter(&buf, false).ReportDiagnostics(errs)
	assert.Equal(t, 2, count)
	assert.Equal(t, "A.java:3:5: error: first\nB.java:9: error: second\n", buf.String())

	buf.Reset()
	newTestReporter(&buf, true).ReportDiagnostics(errs)
	assert.Contains(t, buf.String(), "    hint: change the return type\n")

	assert.Equal(t, 0, newTestReporter(&buf, false).ReportDiagnostics(nil))
}

func TestDiagnosticReporter_ReportError(t *testing.T) {
	cause := fmt.Errorf("open viewinject.yaml: %w", stderrors.New("permission denied"))
	err := errors.WrapConfigurationError("viewinject.yaml", "read", cause).
		WithSuggestion("Check the file permissions")

	t.Run("coded error", func(t *testing.T) {
		var buf bytes.Buffer
		newTestReporter(&buf, false).ReportError(err)
		output := buf.String()

		assert.Contains(t, output, "ERROR: Code Generation Failed")
		assert.Contains(t, output, "Type: ConfigurationError\n")
		assert.Contains(t, output, "Message: failed to read configuration 'viewinject.yaml'\n")
		assert.Contains(t, output, "Cause: open viewinject.yaml: permission denied\n")
		assert.Contains(t, output, "   Config Type: viewinject.yaml\n")
		assert.Contains(t, output, "   1. Check the file permissions\n")
		assert.Contains(t, output, "Run with --verbose")
	})

	t.Run("verbose error chain", func(t *testing.T) {
		var buf bytes.Buffer
		newTestReporter(&buf, true).ReportError(err)
		output := buf.String()

		assert.Contains(t, output, "   1. open viewinject.yaml: permission denied\n")
		assert.Contains(t, output, "   2. permission denied\n")
		assert.NotContains(t, output, "Run with --verbose")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		newTestReporter(&buf, false).ReportError(stderrors.New("boom"))
		assert.Contains(t, buf.String(), "Message: boom\n")
	})
}

func TestNewDiagnosticReporterFromSystem(t *testing.T) {
	var out, errOut bytes.Buffer
	d := utils.NewVerboseDiagnostics()
	d.SetOutput(&out, &errOut)

	r := NewDiagnosticReporter(d)
	errs := errors.NewMultipleErrors()
	errs.Add(errors.New(errors.DataErrorCode, "careful"))
	r.ReportDiagnostics(errs)

	assert.True(t, r.verbose)
	assert.Empty(t, out.String())
	assert.Equal(t, "error: careful\n", errOut.String())
}
