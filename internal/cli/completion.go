package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazesearch/pkg/maze"
	"github.com/matzehuels/mazesearch/pkg/render"
	"github.com/matzehuels/mazesearch/pkg/search"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mazesearch.

To load completions:

Bash:
  $ source <(mazesearch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mazesearch completion bash > /etc/bash_completion.d/mazesearch
  # macOS:
  $ mazesearch completion bash > $(brew --prefix)/etc/bash_completion.d/mazesearch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mazesearch completion zsh > "${fpath[1]}/_mazesearch"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mazesearch completion fish | source

  # To load completions for each session, execute once:
  $ mazesearch completion fish > ~/.config/fish/completions/mazesearch.fish

PowerShell:
  PS> mazesearch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mazesearch completion powershell > mazesearch.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout)
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

	return cmd
}

// registerFlagCompletions offers the valid values of the search and format
// flags that cmd defines.
func registerFlagCompletions(cmd *cobra.Command) {
	var algorithms, formats []string
	for _, a := range search.Algorithms {
		algorithms = append(algorithms, string(a))
	}
	for _, f := range render.Formats {
		formats = append(formats, string(f))
	}

	fixed := map[string][]string{
		"algorithm":  algorithms,
		"algorithms": algorithms,
		"heuristic":  maze.HeuristicNames(),
		"format":     formats,
	}
	for name, values := range fixed {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, listCompletion(values))
	}
}

// listCompletion completes one value, or the last element of a
// comma-separated list.
func listCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
		}
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = prefix + v
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
