// Package cobra provides the Cobra-based CLI command tree for genelection.
package cobra

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/genelection/internal/commands"
	"github.com/NielsdaWheelz/genelection/internal/errors"
	"github.com/NielsdaWheelz/genelection/internal/fixture"
	"github.com/NielsdaWheelz/genelection/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose bool
}

// globalOpts stores the parsed global options for access by main.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// newLogger returns a stderr text logger, at debug level when verbose is set
// and otherwise only for warnings and above.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// noArgs rejects positional arguments with E_USAGE.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.New(errors.EUsage, fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()))
	}
	return nil
}

// usageArgs wraps a cobra positional-argument validator so its failures are E_USAGE.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Wrap(errors.EUsage, err.Error(), err)
		}
		return nil
	}
}

// NewRootCmd creates the root cobra command for genelection.
func NewRootCmd() *cobra.Command {
	var variant string

	rootCmd := &cobra.Command{
		Use:   "genelection",
		Short: "Print a sample election fixture as JSON",
		Long: `genelection - print a sample election fixture as JSON

Prints one line of JSON describing an election ("My Election", candidates
Alice and Bob) whose start and end are nanoseconds since the Unix epoch,
computed from the current time. The output is ready to pass to the
elections contract's create_election call.

Variants:
  flat       start in 1 minute, timestamps as strings, no wrapper (default)
  input      start in 1 day, timestamps as numbers, wrapped under "input"
  election   start in 1 day, timestamps as numbers, wrapped under "election"

The election always ends 3 days from now.`,
		Example: `  genelection
  genelection --variant input`,
		Args:          noArgs,
		Version:       version.FullVersion(),
		SilenceErrors: true, // main prints errors
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			opts := commands.GenerateOpts{
				Variant: variant,
				Logger:  newLogger(cmd.ErrOrStderr(), globalOpts.Verbose),
			}
			return commands.Generate(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "log details to stderr and show full error context")
	rootCmd.Flags().StringVar(&variant, "variant", fixture.DefaultVariant,
		"fixture shape: "+strings.Join(fixture.VariantNames(), ", "))

	_ = rootCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return fixture.VariantNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, err.Error(), err)
	})
	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
