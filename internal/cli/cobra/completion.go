package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/genelection/internal/errors"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts on stdout.

Arguments:
  shell    target shell: bash, zsh, or fish

Installation:

  bash:
    genelection completion bash > ~/.local/share/bash-completion/completions/genelection

  zsh:
    genelection completion zsh > ~/.zsh/completions/_genelection
    # ensure ~/.zsh/completions is in fpath before compinit

  fish:
    genelection completion fish > ~/.config/fish/completions/genelection.fish`,
		Args:      usageArgs(cobra.ExactArgs(1)),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCmd := cmd.Root()
			stdout := cmd.OutOrStdout()

			var err error
			switch args[0] {
			case "bash":
				err = rootCmd.GenBashCompletionV2(stdout, true)
			case "zsh":
				err = rootCmd.GenZshCompletion(stdout)
			case "fish":
				err = rootCmd.GenFishCompletion(stdout, true)
			default:
				return errors.New(errors.EUsage, fmt.Sprintf("unsupported shell: %s (supported: bash, zsh, fish)", args[0]))
			}
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to generate completion script", err)
			}
			return nil
		},
	}

	return cmd
}
