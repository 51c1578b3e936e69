// =============================================================================
// MJML Compiler CLI - Diagnostics
// =============================================================================
//
// This package holds the structured record for a soft validation finding and
// the report format used when printing those findings to stderr.
//
// SEVERITY:
//   Diagnostics never stop compilation. The compiler adapter tags every record
//   with SeverityError, and the report prints all records identically.
//
// REPORT FORMAT:
//   MJML Errors:
//     1. line 3, mj-column: mj-column cannot be used inside mj-body
//     2. line 7, mj-text: Attribute colr is illegal
//
// =============================================================================

package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

// Severity values carried by a Diagnostic.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ReportHeader is the first line of a non-empty diagnostics report.
const ReportHeader = "MJML Errors:"

// =============================================================================
// DIAGNOSTIC RECORD
// =============================================================================

// Diagnostic describes a single soft validation issue found during compilation.
type Diagnostic struct {
	// Severity is either SeverityError or SeverityWarning.
	Severity string

	// Line is the 1-indexed source line, or 0 when unknown.
	Line int

	// TagName is the MJML element the issue was found on, if any.
	TagName string

	// Message is the human-readable description from the compiler.
	Message string
}

// String renders the diagnostic as "line <n>, <tag>: <message>".
// The line and tag parts are dropped when unknown.
func (d Diagnostic) String() string {
	var location []string
	if d.Line > 0 {
		location = append(location, fmt.Sprintf("line %d", d.Line))
	}
	if d.TagName != "" {
		location = append(location, d.TagName)
	}

	if len(location) == 0 {
		return d.Message
	}
	return strings.Join(location, ", ") + ": " + d.Message
}

// =============================================================================
// REPORTING
// =============================================================================

// Format renders diags as a report. An empty list renders as "".
func Format(diags []Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(ReportHeader)
	builder.WriteString("\n")

	for i, d := range diags {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i+1, d.String()))
	}

	return builder.String()
}

// Report writes the report for diags to w. Nothing is written for an empty list.
func Report(w io.Writer, diags []Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, Format(diags)); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	return nil
}
