package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for textspark.

To load completions:

Bash:
  $ source <(textspark completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ textspark completion bash > /etc/bash_completion.d/textspark
  # macOS:
  $ textspark completion bash > $(brew --prefix)/etc/bash_completion.d/textspark

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ textspark completion zsh > "${fpath[1]}/_textspark"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ textspark completion fish | source

  # To load completions for each session, execute once:
  $ textspark completion fish > ~/.config/fish/completions/textspark.fish

PowerShell:
  PS> textspark completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> textspark completion powershell > textspark.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
