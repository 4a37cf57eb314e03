package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command. Vibe ids complete for
// commands that take one.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for vibegrid.

To load completions:

Bash:
  $ source <(vibegrid completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ vibegrid completion bash > /etc/bash_completion.d/vibegrid
  # macOS:
  $ vibegrid completion bash > $(brew --prefix)/etc/bash_completion.d/vibegrid

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ vibegrid completion zsh > "${fpath[1]}/_vibegrid"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ vibegrid completion fish | source

  # To load completions for each session, execute once:
  $ vibegrid completion fish > ~/.config/fish/completions/vibegrid.fish

PowerShell:
  PS> vibegrid completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> vibegrid completion powershell > vibegrid.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
