// =============================================================================
// MJML Compiler CLI - Compiler Module
// =============================================================================
//
// This module is the only place that talks to the external MJML compiler.
// Everything else in the application depends on the Compiler interface, so
// the external library stays an opaque collaborator.
//
// PRODUCTION ADAPTER:
//   MJML wraps github.com/Boostport/mjml-go, which runs the reference mjml
//   compiler as WebAssembly inside the process. No Node.js install is needed.
//
// SOFT VALIDATION:
//   mjml-go reports validation findings as an mjml.Error carrying Details.
//   With ValidationSoft, those details become diagnostics and the document is
//   compiled again with validation skipped to produce the output. With
//   ValidationStrict the same error is a failure.
//
// =============================================================================

package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Boostport/mjml-go"

	"github.com/ginjaninja78/mjml-compile/internal/diagnostics"
	"github.com/ginjaninja78/mjml-compile/internal/types"
)

// =============================================================================
// OPTIONS
// =============================================================================

// ValidationLevel controls how the compiler treats malformed markup.
type ValidationLevel string

const (
	// ValidationStrict fails compilation on any validation finding.
	ValidationStrict ValidationLevel = "strict"

	// ValidationSoft reports findings as diagnostics and still compiles.
	ValidationSoft ValidationLevel = "soft"

	// ValidationSkip compiles without validating.
	ValidationSkip ValidationLevel = "skip"
)

// ParseValidationLevel converts a level name to a ValidationLevel.
// Names are case-insensitive.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch level := ValidationLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case ValidationStrict, ValidationSoft, ValidationSkip:
		return level, nil
	default:
		return "", fmt.Errorf("unknown validation level %q (valid: strict, soft, skip)", s)
	}
}

// Options is the configuration passed with every compile call.
type Options struct {
	ValidationLevel ValidationLevel
	Minify          bool
	Beautify        bool
	KeepComments    bool
}

// DefaultOptions returns soft validation with minified output.
func DefaultOptions() Options {
	return Options{
		ValidationLevel: ValidationSoft,
		Minify:          true,
	}
}

// =============================================================================
// INTERFACE
// =============================================================================

// Compiler turns MJML markup into HTML.
//
// A returned error means compilation failed and there is no output. Soft
// findings are returned in the Result and are not errors.
type Compiler interface {
	Compile(ctx context.Context, markup string, opts Options) (*types.Result, error)
}

// Error is returned when the external compiler cannot produce output.
type Error struct {
	// Message is the human-readable failure description.
	Message string

	// Diagnostics holds the validation details when the failure came from
	// strict validation.
	Diagnostics []diagnostics.Diagnostic

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// Unwrap returns the underlying library error.
func (e *Error) Unwrap() error {
	return e.cause
}

// =============================================================================
// MJML-GO ADAPTER
// =============================================================================

// toHTMLFunc matches mjml.ToHTML so tests can substitute the library call.
type toHTMLFunc func(ctx context.Context, input string, opts ...mjml.ToHTMLOption) (string, error)

// MJML compiles markup with github.com/Boostport/mjml-go.
type MJML struct {
	toHTML toHTMLFunc
}

// New creates the production compiler.
func New() *MJML {
	return &MJML{toHTML: mjml.ToHTML}
}

// Compile implements Compiler.
func (c *MJML) Compile(ctx context.Context, markup string, opts Options) (*types.Result, error) {
	html, err := c.toHTML(ctx, markup, libraryOptions(opts)...)
	if err == nil {
		return &types.Result{HTML: html}, nil
	}

	var mErr mjml.Error
	if !errors.As(err, &mErr) {
		return nil, &Error{Message: err.Error(), cause: err}
	}

	diags := toDiagnostics(mErr)
	if len(diags) == 0 || opts.ValidationLevel != ValidationSoft {
		return nil, &Error{Message: mErr.Message, Diagnostics: diags, cause: err}
	}

	// The findings were soft. Compile again without validation for the output.
	skipped := opts
	skipped.ValidationLevel = ValidationSkip

	html, err = c.toHTML(ctx, markup, libraryOptions(skipped)...)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("compiling after validation: %v", err), Diagnostics: diags, cause: err}
	}

	return &types.Result{Diagnostics: diags, HTML: html}, nil
}

// libraryOptions maps Options onto mjml-go functional options.
func libraryOptions(opts Options) []mjml.ToHTMLOption {
	level := mjml.Soft
	switch opts.ValidationLevel {
	case ValidationStrict:
		level = mjml.Strict
	case ValidationSkip:
		level = mjml.Skip
	}

	libOpts := []mjml.ToHTMLOption{
		mjml.WithValidationLevel(level),
		mjml.WithMinify(opts.Minify),
	}

	// Left to the library defaults unless asked for.
	if opts.Beautify {
		libOpts = append(libOpts, mjml.WithBeautify(true))
	}
	if opts.KeepComments {
		libOpts = append(libOpts, mjml.WithKeepComments(true))
	}

	return libOpts
}

// toDiagnostics converts the details of an mjml.Error.
func toDiagnostics(mErr mjml.Error) []diagnostics.Diagnostic {
	if len(mErr.Details) == 0 {
		return nil
	}

	diags := make([]diagnostics.Diagnostic, 0, len(mErr.Details))
	for _, d := range mErr.Details {
		diags = append(diags, diagnostics.Diagnostic{
			Severity: diagnostics.SeverityError,
			Line:     d.Line,
			TagName:  d.TagName,
			Message:  d.Message,
		})
	}
	return diags
}
