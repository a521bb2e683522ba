package cli

import (
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>...",
	Short: "Show provider and content type for each URL",
	Long: `Show which provider each URL belongs to and what kind of content it is.

Instagram URLs are classified as reel, post, story or other.
Domain matching is case-sensitive: "Instagram.com" is not recognized.

Examples:
  vlink classify https://www.instagram.com/reel/ABC123/
  vlink classify https://instagram.com/p/XYZ https://instagram.com/stories/user/123`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadOrDefault()
		for _, u := range args {
			printClassification(cmd.OutOrStdout(), cfg.Language, extractor.Classify(u))
		}
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
