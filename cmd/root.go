package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/teardown-verifier/internal/app"
	"github.com/olusolaa/teardown-verifier/internal/config"
	apperrors "github.com/olusolaa/teardown-verifier/internal/errors"
)

// Process exit codes.
const (
	exitOK      = 0
	exitDiff    = 1
	exitFailure = 2
	exitPartial = 3
)

// exitError carries a process exit code out of a command. Failures are
// printed before it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

type cli struct {
	viper     *viper.Viper
	cfgFile   string
	stdout    io.Writer
	stderr    io.Writer
	buildOpts []app.BuildOption
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "teardown-verifier",
		Short: "Verifies that an infrastructure teardown left no resources behind.",
		Long: `Teardown Verifier captures an inventory of cloud resources before and after
a teardown and compares the two snapshots, listing resources that were left
behind and resources that appeared unexpectedly.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initializeConfig(cmd)
		},
	}
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "Configuration file path (default is .teardown-verifier.yaml in the working or home directory)")
	flags.String(app.FlagLogLevel, "", "Override log level (debug, info, warn, error)")
	flags.String(app.FlagLogFormat, "", "Override log format (text, json)")
	flags.String(app.FlagRegion, "", "AWS region")
	flags.String(app.FlagProfile, "", "AWS shared config profile")

	rootCmd.AddCommand(newCaptureCmd(c), newCompareCmd(c), newCategoriesCmd(c))
	return rootCmd
}

func (c *cli) initializeConfig(cmd *cobra.Command) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if err := config.ReadConfigFile(c.viper, c.cfgFile, home); err != nil {
		return c.fail("configuration", err)
	}
	if err := app.ApplyFlagOverrides(c.viper, cmd.Flags()); err != nil {
		return c.fail("configuration", apperrors.WrapUserFacing(err, apperrors.CodeConfigValidation,
			fmt.Sprintf("invalid flag value: %v", err), "Run with --help to see the accepted flag formats."))
	}
	return nil
}

func (c *cli) build(cmd *cobra.Command, phase string) (*app.Application, error) {
	application, err := app.BuildApplicationFromViper(cmd.Context(), c.viper, c.buildOpts...)
	if err != nil {
		return nil, c.fail(phase, err)
	}
	return application, nil
}

// fail prints err as "ERROR: <phase> failed: <message>" and returns the
// failure exit code.
func (c *cli) fail(phase string, err error) error {
	msg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	if !ok {
		msg = err.Error()
		suggestion = ""
	}
	fmt.Fprintf(c.stderr, "ERROR: %s failed: %s\n", phase, msg)
	if suggestion != "" {
		fmt.Fprintf(c.stderr, "Suggestion: %s\n", suggestion)
	}
	return &exitError{code: exitFailure, err: err}
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, opts ...app.BuildOption) int {
	return execute(ctx, args, os.Stdout, os.Stderr, config.NewViper(), opts...)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, v *viper.Viper, opts ...app.BuildOption) int {
	c := &cli{
		viper:     v,
		stdout:    stdout,
		stderr:    stderr,
		buildOpts: append([]app.BuildOption{app.WithOutput(stdout), app.WithLogOutput(stderr)}, opts...),
	}
	rootCmd := newRootCmd(c)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	// Usage errors from cobra itself.
	fmt.Fprintf(stderr, "ERROR: %v\n", err)
	fmt.Fprintln(stderr, "Run with --help for usage.")
	return exitFailure
}
