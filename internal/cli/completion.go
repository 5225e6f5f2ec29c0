package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazewalk/pkg/maze/search"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mazewalk.

To load completions:

Bash:
  $ source <(mazewalk completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mazewalk completion bash > /etc/bash_completion.d/mazewalk
  # macOS:
  $ mazewalk completion bash > $(brew --prefix)/etc/bash_completion.d/mazewalk

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mazewalk completion zsh > "${fpath[1]}/_mazewalk"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mazewalk completion fish | source

  # To load completions for each session, execute once:
  $ mazewalk completion fish > ~/.config/fish/completions/mazewalk.fish

PowerShell:
  PS> mazewalk completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mazewalk completion powershell > mazewalk.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
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

// completeFormats completes --format values.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return render.Formats, cobra.ShellCompDirectiveNoFileComp
}

// completeModes completes --mode values, including "both".
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := make([]string, 0, len(search.Modes)+1)
	for _, m := range search.Modes {
		modes = append(modes, m.String()+"\t"+m.Title())
	}
	return append(modes, modeBoth+"\tcompare both"), cobra.ShellCompDirectiveNoFileComp
}
