// =============================================================================
// MJML Compiler CLI - Shared Types
// =============================================================================
//
// This package contains the value produced by a compilation. It is shared by:
//   - compiler
//   - cmd
//
// =============================================================================

package types

import (
	"github.com/ginjaninja78/mjml-compile/internal/diagnostics"
)

// Result is the outcome of a compilation that did not fail.
type Result struct {
	// Diagnostics contains the soft validation findings in the order the
	// compiler reported them. It may be empty.
	Diagnostics []diagnostics.Diagnostic

	// HTML is the generated document. It is written to stdout verbatim.
	HTML string
}

// HasDiagnostics reports whether the compiler found any soft issues.
func (r *Result) HasDiagnostics() bool {
	return r != nil && len(r.Diagnostics) > 0
}
