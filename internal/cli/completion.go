package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts for the flamegraph commands.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell to stdout.

The script completes the render, inspect and example subcommands and their
flags, along with the viz types and palette names that render accepts.

Load it into the current shell:

  bash:        source <(flamegraph completion bash)
  zsh:         source <(flamegraph completion zsh)
  fish:        flamegraph completion fish | source
  powershell:  flamegraph completion powershell | Out-String | Invoke-Expression

To keep completions across sessions, write the script to your shell's
completion directory instead, for example:

  flamegraph completion fish > ~/.config/fish/completions/flamegraph.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
