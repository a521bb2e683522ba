package cli

import (
	"fmt"
	"strconv"

	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/textutil"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Render media metadata as display text",
}

var formatSizeCmd = &cobra.Command{
	Use:   "size <bytes|unknown>",
	Short: "Format a file size in bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		var size *float64
		if args[0] != "unknown" {
			v, err := parseFloat(cfg.Language, args[0])
			if err != nil {
				return err
			}
			size = &v
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.FileSizeText(cfg.Language, size))
		return nil
	},
}

var formatDurationCmd = &cobra.Command{
	Use:   "duration <seconds>",
	Short: "Format a duration in seconds as mm:ss or h:mm:ss",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%s: %s", i18n.T(cfg.Language).Errors.InvalidNumber, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.DurationText(seconds))
		return nil
	},
}

var formatBitrateCmd = &cobra.Command{
	Use:   "bitrate <kbps>",
	Short: "Format a bitrate given in Kbps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		v, err := parseFloat(cfg.Language, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), textutil.BitrateText(&v))
		return nil
	},
}

func parseFloat(lang, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %s", i18n.T(lang).Errors.InvalidNumber, s)
	}
	return v, nil
}

func init() {
	formatCmd.AddCommand(formatSizeCmd)
	formatCmd.AddCommand(formatDurationCmd)
	formatCmd.AddCommand(formatBitrateCmd)
	rootCmd.AddCommand(formatCmd)
}
