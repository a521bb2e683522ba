package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/textutil"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <url> <error message>...",
	Short: "Build a bug report for a failed download",
	Long: `Build a bug report from a downloader error message.

If the message says the site wants a login, a hint is printed first.

Example:
  vlink report https://instagram.com/p/ABC "ERROR: login required"`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		msg := joinArgs(args[1:])

		if textutil.IsLoginRequired(msg) {
			fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("%s", i18n.T(cfg.Language).CLI.LoginRequired))
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.ErrorReport(errors.New(msg), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
