package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/notify"
	"github.com/spf13/cobra"
)

// readClipboard is swapped out in tests
var readClipboard = clipboard.ReadAll

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Extract links from the system clipboard",
	Long: `Read the system clipboard and print the links found in it.

A short notice is shown on stderr telling whether a link was found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		text, err := readClipboard()
		if err != nil {
			return fmt.Errorf("%s: %w", i18n.T(cfg.Language).Errors.ClipboardUnavailable, err)
		}

		toaster := notify.NewAsync(notify.NewTerminal(cmd.ErrOrStderr()), 4)
		defer toaster.Close()

		d := extractor.NewDispatcher(toaster, cfg.Language)
		result := d.FromClipboard(text, multiLink || cfg.MultiLink)
		if result == "" {
			return nil
		}
		return printURLs(cmd.OutOrStdout(), cfg.Language, extractor.FindURLs(result, false))
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <text>...",
	Short: "Extract the first link from shared text",
	Long: `Extract the first link from text handed over by another program,
e.g. a browser "share" action or a file manager script.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		d := extractor.NewDispatcher(notify.NewTerminal(cmd.ErrOrStderr()), cfg.Language)
		result := d.FromSharedText(joinArgs(args))
		if result == "" {
			return nil
		}
		return printURLs(cmd.OutOrStdout(), cfg.Language, []string{result})
	},
}

func init() {
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(shareCmd)
}
