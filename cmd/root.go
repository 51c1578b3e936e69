// =============================================================================
// MJML Compiler CLI - Root Command
// =============================================================================
//
// This file defines the only command of the CLI. It takes one positional
// argument, the MJML markup, and writes the compiled HTML to stdout.
//
// INVOCATION:
//   compile-mjml '<mjml><mj-body></mj-body></mjml>'
//
// STREAMS:
//   stdout : the compiled HTML, verbatim, nothing else
//   stderr : usage message, diagnostics report, or failure description
//
// EXIT CODES:
//   0 : compiled (diagnostics, if any, are non-fatal)
//   1 : wrong argument count, bad configuration, or compilation failure
//
// FLOW:
//   validate argument count -> compile -> report diagnostics -> write HTML
//
// =============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/mjml-compile/internal/compiler"
	"github.com/ginjaninja78/mjml-compile/internal/config"
	"github.com/ginjaninja78/mjml-compile/internal/diagnostics"
	"github.com/ginjaninja78/mjml-compile/internal/logging"
)

// Usage is printed to stderr when the argument count is wrong.
const Usage = "Usage: compile-mjml <mjml-content>"

// ErrUsage is returned when the command is not given exactly one argument.
var ErrUsage = errors.New("expected exactly one argument")

// =============================================================================
// EXECUTE FUNCTIONS
// =============================================================================

// Execute runs the CLI against the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with the production compiler and the built-in
// configuration, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunWith(context.Background(), RunOptions{Compiler: compiler.New()}, args, stdout, stderr)
}

// RunOptions configures an embedded run of the CLI. None of these settings
// can be reached from argv, which carries only the markup.
type RunOptions struct {
	// Compiler performs the compilation. Required.
	Compiler compiler.Compiler

	// ConfigFile is an optional YAML configuration file. Empty means the
	// built-in configuration: soft validation, minified output.
	ConfigFile string

	// Verbose writes debug logs, including build information, to stderr.
	Verbose bool
}

// RunWith executes the CLI with the given options and returns the exit code.
func RunWith(ctx context.Context, opts RunOptions, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(&invocation{
		compiler: opts.Compiler,
		stdout:   stdout,
		stderr:   stderr,
		cfgFile:  opts.ConfigFile,
		verbose:  opts.Verbose,
	})
	if args == nil {
		// Cobra reads os.Args when the slice is nil.
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var cErr *compiler.Error
	switch {
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(stderr, Usage)
	case errors.As(err, &cErr):
		fmt.Fprintf(stderr, "Error compiling MJML: %v\n", cErr)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitFailure
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// invocation holds the state of one run of the command.
type invocation struct {
	compiler compiler.Compiler
	stdout   io.Writer
	stderr   io.Writer

	// cfgFile is the optional configuration file path.
	cfgFile string

	// verbose enables debug logging on stderr.
	verbose bool
}

// newRootCmd builds the command for one invocation.
func newRootCmd(inv *invocation) *cobra.Command {
	root := &cobra.Command{
		Use:   "compile-mjml <mjml-content>",
		Short: "Compile MJML markup to responsive email HTML",
		Long: `compile-mjml compiles a single MJML document, passed as the only argument,
into minified HTML written to stdout.

Validation is soft: problems in the markup are reported on stderr and the
HTML is still produced. Only a document the compiler cannot handle at all
is a failure.

Example Usage:
  compile-mjml '<mjml><mj-body></mj-body></mjml>'`,

		// Every argv entry is positional, including ones starting with "-"
		// and a bare "--". The markup is opaque and passed through verbatim.
		DisableFlagParsing: true,

		// Argument count errors are reported as the usage line by RunWith.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return inv.compile(cmd.Context(), args[0])
		},
	}

	root.SetOut(inv.stdout)
	root.SetErr(inv.stderr)

	return root
}

// =============================================================================
// COMPILE
// =============================================================================

// compile runs the single compiler call and writes the outcome.
func (inv *invocation) compile(ctx context.Context, markup string) error {
	cfg, err := config.Load(inv.cfgFile)
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(logging.Options{
		Level:   logging.ParseLevel(cfg.Logging.Level),
		File:    cfg.Logging.File,
		Verbose: inv.verbose,
		Stderr:  inv.stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer cleanup()

	logger.Debug("build", buildInfo()...)

	opts := cfg.CompileOptions()
	logger.Debug("compiling markup",
		"bytes", len(markup),
		"validation_level", string(opts.ValidationLevel),
		"minify", opts.Minify,
	)

	result, err := inv.compiler.Compile(ctx, markup, opts)
	if err != nil {
		logger.Error("compilation failed", "error", err)
		return err
	}

	if result.HasDiagnostics() {
		logger.Warn("compiled with diagnostics", "count", len(result.Diagnostics))
		if err := diagnostics.Report(inv.stderr, result.Diagnostics); err != nil {
			logger.Error("failed to report diagnostics", "error", err)
		}
	}

	if _, err := io.WriteString(inv.stdout, result.HTML); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("compiled", slog.Int("html_bytes", len(result.HTML)))
	return nil
}
