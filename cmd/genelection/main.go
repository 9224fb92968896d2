// Command genelection prints a sample election fixture as JSON.
package main

import (
	"os"

	"github.com/NielsdaWheelz/genelection/internal/cli/cobra"
	"github.com/NielsdaWheelz/genelection/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
