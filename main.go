// =============================================================================
// MJML Compiler CLI - Main Entry Point
// =============================================================================
//
// compile-mjml compiles one MJML document, given as the only command-line
// argument, into HTML on stdout.
//
// USAGE:
//   compile-mjml <mjml-content>
//
// ARCHITECTURE:
//   - cmd/                  : the Cobra root command and exit-code handling
//   - internal/compiler     : the interface to the external MJML compiler
//   - internal/diagnostics  : soft validation records and their report
//   - internal/config       : optional YAML configuration
//   - internal/logging      : slog setup
//   - internal/types        : the compilation result
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/mjml-compile/cmd"
)

// main delegates to the cmd package, which exits with the command's status.
func main() {
	cmd.Execute()
}
