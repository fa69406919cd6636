// Package report formats and prints the user-facing result of a pushcli
// invocation: the success confirmation, the aggregated failure report,
// validation errors, and non-fatal warnings. Format functions are pure
// and return strings; the Fprint/Print helpers write to the streams.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ariel-frischer/pushcli/internal/options"
	"github.com/ariel-frischer/pushcli/internal/pushover"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
)

// FormatSuccess returns the confirmation line for an accepted
// notification, including the API request id when one was returned.
func FormatSuccess(outcome pushover.Outcome) string {
	mark := successColor.Sprint("✓")
	if outcome.RequestID != "" {
		return fmt.Sprintf("%s Notification sent %s\n", mark, dimColor.Sprintf("(request %s)", outcome.RequestID))
	}
	return fmt.Sprintf("%s Notification sent\n", mark)
}

// FormatFailure returns the failure report: a header followed by one
// bulleted line per reason.
func FormatFailure(outcome pushover.Outcome) string {
	var b strings.Builder
	b.WriteString(failureColor.Sprint("Failed to send notification:"))
	b.WriteString("\n")
	for _, reason := range outcome.Reasons {
		b.WriteString(fmt.Sprintf("  - %s\n", reason))
	}
	return b.String()
}

// FormatValidationErrors returns one line per validation error followed
// by a pointer to the help text.
func FormatValidationErrors(errs []options.ValidationError) string {
	var b strings.Builder
	b.WriteString(failureColor.Sprint("Invalid parameters:"))
	b.WriteString("\n")
	for _, err := range errs {
		b.WriteString(fmt.Sprintf("  - %s\n", err.Message))
	}
	b.WriteString("\nSee 'pushcli --help' for usage.\n")
	return b.String()
}

// FormatWarning returns a single non-fatal warning line.
func FormatWarning(warning string) string {
	return warningColor.Sprintf("warning: %s", warning) + "\n"
}

// Printer writes formatted results to a pair of output streams. The
// zero streams default to stdout and stderr.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer bound to the process streams.
func NewPrinter() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Success prints the confirmation line unless quiet is set.
func (p *Printer) Success(outcome pushover.Outcome, quiet bool) {
	if quiet {
		return
	}
	fmt.Fprint(p.Out, FormatSuccess(outcome))
}

// Failure prints the aggregated failure report to the error stream.
func (p *Printer) Failure(outcome pushover.Outcome) {
	fmt.Fprint(p.Err, FormatFailure(outcome))
}

// ValidationFailure prints every validation error to the error stream.
func (p *Printer) ValidationFailure(errs []options.ValidationError) {
	fmt.Fprint(p.Err, FormatValidationErrors(errs))
}

// Warning prints one non-fatal warning to the error stream.
func (p *Printer) Warning(warning string) {
	fmt.Fprint(p.Err, FormatWarning(warning))
}
