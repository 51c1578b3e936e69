package cmd

// Exit codes returned by compile-mjml.
const (
	// ExitSuccess indicates the markup compiled. Diagnostics may still have
	// been reported on stderr.
	ExitSuccess = 0

	// ExitFailure indicates a usage error, a configuration error, or a
	// compilation failure.
	ExitFailure = 1
)
