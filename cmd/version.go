// =============================================================================
// MJML Compiler CLI - Version Information
// =============================================================================
//
// argv carries only the markup, so build information is not printed by a
// flag. It is logged as the first debug record of a verbose run:
//
//   level=DEBUG msg=build version=1.0.0 build_date=2024-01-01 go_version=go1.24.0
//
// =============================================================================

package cmd

import (
	"runtime"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/mjml-compile/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "dev"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// buildInfo returns the build information as slog key-value pairs.
func buildInfo() []any {
	return []any{
		"version", Version,
		"build_date", BuildDate,
		"go_version", runtime.Version(),
	}
}
