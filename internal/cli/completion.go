package cli

import (
	"strings"

	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for vlink.

Bash:
  source <(vlink completion bash)

Zsh:
  vlink completion zsh > "${fpath[1]}/_vlink"

Fish:
  vlink completion fish > ~/.config/fish/completions/vlink.fish

PowerShell:
  vlink completion powershell >> $PROFILE
`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(w)
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(w)
		default:
			return cmd.Help()
		}
	},
}

// completeConfigKeys offers config keys for the first argument and
// language codes for the value of "language"
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 1 && args[0] == "language" && cmd == configSetCmd {
		var codes []string
		for _, l := range i18n.SupportedLanguages {
			codes = append(codes, l.Code)
		}
		return codes, cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var keys []string
	for _, k := range config.Keys {
		if strings.HasPrefix(k, toComplete) {
			keys = append(keys, k)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)

	configSetCmd.ValidArgsFunction = completeConfigKeys
	configGetCmd.ValidArgsFunction = completeConfigKeys
	formatCmd.ValidArgs = []string{"size", "duration", "bitrate"}
}
