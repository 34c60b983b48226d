package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for gridfit.

Widget types for --type are completed from the configured catalog.

Bash:
  $ source <(gridfit completion bash)

Zsh:
  $ gridfit completion zsh > "${fpath[1]}/_gridfit"

Fish:
  $ gridfit completion fish > ~/.config/fish/completions/gridfit.fish

PowerShell:
  PS> gridfit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}
}

// completeWidgetTypes completes --type values from the catalog, with titles
// as descriptions. The config file is loaded first since completion runs
// without the root hooks.
func (c *CLI) completeWidgetTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if err := c.loadConfig(); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	for _, d := range c.cfg.Catalog().Definitions() {
		if !strings.HasPrefix(d.Type, toComplete) {
			continue
		}
		if d.Title != "" {
			out = append(out, d.Type+"\t"+d.Title)
		} else {
			out = append(out, d.Type)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// layoutFileCompletion restricts positional completion to JSON files.
func layoutFileCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}
