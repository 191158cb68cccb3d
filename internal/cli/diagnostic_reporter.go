package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/utils"
)

// DiagnosticReporter prints compiler-style diagnostics and fatal errors
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
	colors  bool
}

// NewDiagnosticReporter creates a reporter writing to the error stream of
// the diagnostic system
func NewDiagnosticReporter(diagnostics *utils.DiagnosticSystem) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     diagnostics.ErrorWriter(),
		verbose: diagnostics.Level() >= utils.DiagnosticVerbose,
		colors:  diagnostics.ColorsEnabled(),
	}
}

// ReportDiagnostics prints every collected error and returns how many were printed
func (r *DiagnosticReporter) ReportDiagnostics(errs *errors.MultipleErrors) int {
	if errs == nil {
		return 0
	}
	for _, err := range errs.Errors {
		r.reportDiagnostic(err)
	}
	return errs.Count()
}

func (r *DiagnosticReporter) reportDiagnostic(err errors.CodedError) {
	loc := err.Location()
	if !loc.IsEmpty() {
		fmt.Fprintf(r.out, "%s: ", r.paint(loc.String(), color.Bold))
	}
	fmt.Fprintf(r.out, "%s %s\n", r.paint("error:", color.FgRed, color.Bold), message(err))

	if r.verbose {
		for _, hint := range err.Suggestions() {
			fmt.Fprintf(r.out, "    %s %s\n", r.paint("hint:", color.FgCyan), hint)
		}
		if cause := err.Unwrap(); cause != nil {
			fmt.Fprintf(r.out, "    caused by: %s\n", cause.Error())
		}
	}
}

// ReportError prints a fatal error with its context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\n%s\n", r.paint("ERROR: Code Generation Failed", color.FgRed, color.Bold))
	fmt.Fprintf(r.out, "=============================\n\n")

	var coded errors.CodedError
	if !stderrors.As(err, &coded) {
		fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())
		return
	}

	typeStr := coded.ErrorCode().String()
	fmt.Fprintf(r.out, "Type: %s\n", typeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(typeStr)+6))
	fmt.Fprintf(r.out, "Message: %s\n\n", message(coded))

	if !coded.Location().IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", coded.Location().String())
	}

	if cause := coded.Unwrap(); cause != nil {
		r.printCauses(cause)
	}

	if context := coded.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := coded.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if !r.verbose {
		fmt.Fprintf(r.out, "Run with --verbose for more detailed output\n")
	}
}

func (r *DiagnosticReporter) printCauses(cause error) {
	if !r.verbose {
		fmt.Fprintf(r.out, "Cause: %s\n\n", cause.Error())
		return
	}
	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err := cause; err != nil; err = stderrors.Unwrap(err) {
		fmt.Fprintf(r.out, "   %d. %s\n", level, err.Error())
		level++
	}
	fmt.Fprintf(r.out, "\n")
}

// printContext prints context information with keys sorted
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(r.out, "Context:\n")
	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) paint(text string, attrs ...color.Attribute) string {
	if !r.colors {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// message is the error text without the location prefix
func message(err error) string {
	var base *errors.BaseError
	if stderrors.As(err, &base) {
		return base.Message
	}
	return err.Error()
}
