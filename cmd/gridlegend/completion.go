package gridlegend

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		// completion must work without a readable config
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(out)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
		Example: `
# Bash
gridlegend completion bash > /etc/bash_completion.d/gridlegend

# Zsh
gridlegend completion zsh > "${fpath[1]}/_gridlegend"

# Fish
gridlegend completion fish > ~/.config/fish/completions/gridlegend.fish

# PowerShell
gridlegend completion powershell > $PROFILE\gridlegend.ps1
`,
	}
	rootCmd.AddCommand(cmd)
}
