package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/textutil"
	"github.com/guiyumin/vlink/internal/core/version"
	"github.com/spf13/cobra"
)

var (
	multiLink bool
	forceTLS  bool
	pick      string
)

var rootCmd = &cobra.Command{
	Use:   "vlink [text]",
	Short: "Find and classify downloadable links in text",
	Long: `Find downloadable links in text and tell which kind of content they point at.

Pass "-" to read the text from stdin.

Examples:
  vlink "check this https://www.instagram.com/reel/ABC123/"
  vlink -m "a https://a.com/1 b https://b.com/2"
  vlink --pick 2 -m "a https://a.com/1 b https://b.com/2"
  pbpaste | vlink -`,
	Version:      version.Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		text := args[0]
		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}

		cfg := config.LoadOrDefault()
		if !config.Exists() {
			t := i18n.T(cfg.Language)
			fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("%s. Run 'vlink init'.", t.Errors.ConfigNotFound))
		}

		urls := extractor.FindURLs(text, !(multiLink || cfg.MultiLink))
		return printURLs(cmd.OutOrStdout(), cfg.Language, urls)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&multiLink, "multi", "m", false, "extract every link instead of the first")
	rootCmd.PersistentFlags().BoolVar(&forceTLS, "https", false, "upgrade http:// links to https://")
	rootCmd.PersistentFlags().StringVar(&pick, "pick", "", "only print the n-th link (1-based)")
}

func Execute() error {
	return rootCmd.Execute()
}

// selectURLs applies --https and --pick to extracted links
func selectURLs(lang string, urls []string) ([]string, error) {
	if forceTLS {
		upgraded := make([]string, len(urls))
		for i, u := range urls {
			upgraded[i] = textutil.ToHTTPSURL(u)
		}
		urls = upgraded
	}

	if pick == "" {
		return urls, nil
	}
	if !textutil.IsNumberInRange(pick, 1, len(urls)) {
		return nil, fmt.Errorf("%s: --pick %s (have %d link(s))", i18n.T(lang).Errors.InvalidNumber, pick, len(urls))
	}
	n, _ := strconv.Atoi(pick)
	return urls[n-1 : n], nil
}

func printURLs(w io.Writer, lang string, urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("%s", i18n.T(lang).Errors.NoURL)
	}

	urls, err := selectURLs(lang, urls)
	if err != nil {
		return err
	}

	for _, u := range urls {
		printClassification(w, lang, extractor.Classify(u))
	}
	return nil
}

var (
	urlColor      = color.New(color.FgCyan)
	providerColor = color.New(color.FgGreen, color.Bold)
	otherColor    = color.New(color.FgYellow)
)

// printClassification writes "url  provider · type" for one link
func printClassification(w io.Writer, lang string, c extractor.Classification) {
	var label string
	if c.Provider == "" {
		label = otherColor.Sprint(i18n.T(lang).CLI.NotInstagram)
	} else {
		label = providerColor.Sprint(textutil.ConnectWithDelimiter(" · ", c.Provider, string(c.ContentType)))
	}
	fmt.Fprintf(w, "%s  %s\n", urlColor.Sprint(c.URL), label)
}

// joinArgs rebuilds free text split by the shell
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
