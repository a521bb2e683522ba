package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/textutil"
	"github.com/spf13/cobra"
)

var (
	watchTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	watchURLStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	watchTypeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	watchMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	watchErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const watchHistory = 20

type clipboardMsg struct {
	text string
	err  error
}

type watchTickMsg time.Time

type watchModel struct {
	spinner  spinner.Model
	t        *i18n.Translations
	interval time.Duration
	last     string
	seen     map[string]bool
	entries  []extractor.Classification
	err      error
}

func newWatchModel(lang string, interval time.Duration) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if interval <= 0 {
		interval = config.DefaultWatchInterval
	}

	return watchModel{
		spinner:  s,
		t:        i18n.T(lang),
		interval: interval,
		seen:     make(map[string]bool),
	}
}

func readClipboardCmd() tea.Msg {
	text, err := readClipboard()
	return clipboardMsg{text: text, err: err}
}

func (m watchModel) nextPoll() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, readClipboardCmd)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		m.err = msg.err
		if msg.err == nil && msg.text != m.last {
			m.last = msg.text
			m.addURLs(extractor.FindURLs(msg.text, false))
		}
		return m, m.nextPoll()

	case watchTickMsg:
		return m, readClipboardCmd
	}

	return m, nil
}

// addURLs records links not seen before, newest first. Links trimmed
// out of the history are forgotten so they can be listed again.
func (m *watchModel) addURLs(urls []string) {
	for _, u := range urls {
		if m.seen[u] {
			continue
		}
		m.seen[u] = true
		m.entries = append([]extractor.Classification{extractor.Classify(u)}, m.entries...)
	}
	if len(m.entries) > watchHistory {
		for _, e := range m.entries[watchHistory:] {
			delete(m.seen, e.URL)
		}
		m.entries = m.entries[:watchHistory]
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n\n", textutil.ConnectWithBlank(m.spinner.View(), watchTitleStyle.Render(m.t.CLI.Watching)))

	if m.err != nil {
		fmt.Fprintf(&b, "  %s\n\n", watchErrStyle.Render(fmt.Sprintf("%s: %v", m.t.Errors.ClipboardUnavailable, m.err)))
	}

	if len(m.entries) == 0 {
		fmt.Fprintf(&b, "  %s\n", watchMutedStyle.Render(m.t.CLI.NothingYet))
	}
	for _, e := range m.entries {
		kind := m.t.CLI.NotInstagram
		if e.Provider != "" {
			kind = textutil.ConnectWithDelimiter(" · ", e.Provider, string(e.ContentType))
		}
		fmt.Fprintf(&b, "  %s  %s\n", watchURLStyle.Render(e.URL), watchTypeStyle.Render(kind))
	}

	fmt.Fprintf(&b, "\n  %s\n", watchMutedStyle.Render(m.t.CLI.WatchHint))
	return b.String()
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and classify copied links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		p := tea.NewProgram(newWatchModel(cfg.Language, cfg.Watch.Interval))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("watch failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
