package cli

import (
	"fmt"

	"github.com/guiyumin/vlink/internal/core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Report())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
