package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// run executes the root command with a fresh home directory and flag state
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	multiLink, forceTLS, pick, servePort = false, false, "", 0
	t.Cleanup(func() {
		multiLink, forceTLS, pick, servePort = false, false, "", 0
		for _, name := range []string{"multi", "https", "pick"} {
			if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func stubClipboard(t *testing.T, text string, err error) {
	t.Helper()
	orig := readClipboard
	readClipboard = func() (string, error) { return text, err }
	t.Cleanup(func() { readClipboard = orig })
}

func TestRootClassifiesFirstLink(t *testing.T) {
	out, _, err := run(t, "see https://www.instagram.com/reel/ABC123/ and https://instagram.com/p/XYZ")
	require.NoError(t, err)

	assert.Contains(t, out, "https://www.instagram.com/reel/ABC123/")
	assert.Contains(t, out, "instagram · reel")
	assert.NotContains(t, out, "/p/XYZ")
}

func TestRootMultiAndPick(t *testing.T) {
	text := "a https://a.com/1 b http://instagram.com/p/XYZ"

	out, _, err := run(t, "-m", text)
	require.NoError(t, err)
	assert.Contains(t, out, "https://a.com/1")
	assert.Contains(t, out, "instagram · post")

	out, _, err = run(t, "-m", "--pick", "2", "--https", text)
	require.NoError(t, err)
	assert.NotContains(t, out, "https://a.com/1")
	assert.Contains(t, out, "https://instagram.com/p/XYZ")

	_, _, err = run(t, "-m", "--pick", "3", text)
	assert.Error(t, err)
}

func TestRootNoLink(t *testing.T) {
	_, _, err := run(t, "nothing here")
	require.Error(t, err)
	assert.Equal(t, i18n.T("en").Errors.NoURL, err.Error())
}

func TestPaste(t *testing.T) {
	tr := i18n.T("en")

	stubClipboard(t, "copied https://instagram.com/stories/user.name/123 text", nil)
	out, errOut, err := run(t, "paste")
	require.NoError(t, err)
	assert.Contains(t, out, "instagram · story")
	assert.Contains(t, errOut, tr.Toast.PasteMsg)

	stubClipboard(t, "no links", nil)
	out, errOut, err = run(t, "paste")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, tr.Toast.PasteFailMsg)

	stubClipboard(t, "", errors.New("no xclip"))
	_, _, err = run(t, "paste")
	require.Error(t, err)
	assert.Contains(t, err.Error(), tr.Errors.ClipboardUnavailable)
}

func TestShare(t *testing.T) {
	out, errOut, err := run(t, "share", "Check", "https://www.youtube.com/watch?v=abc123", "https://b.com/2")
	require.NoError(t, err)
	assert.Contains(t, out, "https://www.youtube.com/watch?v=abc123")
	assert.NotContains(t, out, "b.com")
	assert.Empty(t, errOut)

	out, errOut, err = run(t, "share", "nothing")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, i18n.T("en").Toast.ShareFailMsg)
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := run(t, "classify", "https://instagram.com/p/A1", "https://www.Instagram.com/reel/ABC123/",
		"https://example.com/?next=https://instagram.com/reel/ABC")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "instagram · post")
	assert.Contains(t, lines[1], i18n.T("en").CLI.NotInstagram)
	assert.Contains(t, lines[2], "instagram · reel")
}

func TestFormatCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"format", "size", "5767168"}, "5.50 MB"},
		{[]string{"format", "size", "unknown"}, "Unknown"},
		{[]string{"format", "duration", "3725"}, "1:02:05"},
		{[]string{"format", "bitrate", "128"}, "128.0 Kbps"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	_, _, err := run(t, "format", "duration", "soon")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	out, errOut, err := run(t, "report", "https://instagram.com/p/A", "ERROR:", "Login", "required")
	require.NoError(t, err)
	assert.Contains(t, out, "URL: https://instagram.com/p/A")
	assert.Contains(t, out, "ERROR: Login required")
	assert.Contains(t, errOut, i18n.T("en").CLI.LoginRequired)
}

func TestConfigSetGet(t *testing.T) {
	home := t.TempDir()

	t.Setenv("HOME", home)
	out, _, err := runInHome(t, home, "config", "set", "language", "zh")
	require.NoError(t, err)
	assert.Contains(t, out, "Set language = zh")

	out, _, err = runInHome(t, home, "config", "get", "language")
	require.NoError(t, err)
	assert.Equal(t, "zh", strings.TrimSpace(out))

	_, _, err = runInHome(t, home, "config", "set", "nope", "1")
	assert.Error(t, err)

	_, _, err = runInHome(t, home, "config", "set", "language", "xx")
	assert.Error(t, err)
}

// runInHome is run without resetting HOME between calls
func runInHome(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWatchModelCollectsNewLinks(t *testing.T) {
	m := newWatchModel("en", 10*time.Millisecond)

	next, cmd := m.Update(clipboardMsg{text: "https://instagram.com/reel/R1 https://a.com/x"})
	require.NotNil(t, cmd, "should schedule the next poll")
	m = next.(watchModel)
	require.Len(t, m.entries, 2)
	assert.Equal(t, extractor.ContentType(""), m.entries[0].ContentType)
	assert.Equal(t, extractor.ContentReel, m.entries[1].ContentType)

	// same clipboard text again: nothing new
	next, _ = m.Update(clipboardMsg{text: "https://instagram.com/reel/R1 https://a.com/x"})
	m = next.(watchModel)
	assert.Len(t, m.entries, 2)

	// new text repeating a known link only adds the new one
	next, _ = m.Update(clipboardMsg{text: "https://a.com/x https://instagram.com/p/P1"})
	m = next.(watchModel)
	require.Len(t, m.entries, 3)
	assert.Equal(t, extractor.ContentPost, m.entries[0].ContentType)

	view := m.View()
	assert.Contains(t, view, "https://instagram.com/p/P1")
	assert.Contains(t, view, "instagram · post")
}

func TestWatchModelErrorsAndQuit(t *testing.T) {
	m := newWatchModel("en", 0)
	assert.Equal(t, time.Second, m.interval)
	assert.Contains(t, m.View(), i18n.T("en").CLI.NothingYet)

	next, _ := m.Update(clipboardMsg{err: errors.New("no display")})
	m = next.(watchModel)
	assert.Contains(t, m.View(), "no display")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWatchModelHistoryLimit(t *testing.T) {
	m := newWatchModel("en", time.Second)

	var b strings.Builder
	for i := 0; i < watchHistory+5; i++ {
		b.WriteString(" https://example.com/")
		b.WriteString(strings.Repeat("a", i+1))
	}
	next, _ := m.Update(clipboardMsg{text: b.String()})
	m = next.(watchModel)
	assert.Len(t, m.entries, watchHistory)
	assert.Len(t, m.seen, watchHistory)

	// the oldest link fell out of the history, so copying it again lists it
	next, _ = m.Update(clipboardMsg{text: "https://example.com/a"})
	m = next.(watchModel)
	require.Len(t, m.entries, watchHistory)
	assert.Equal(t, "https://example.com/a", m.entries[0].URL)
	assert.Len(t, m.seen, watchHistory)
}

func TestWatchTickPollsClipboard(t *testing.T) {
	stubClipboard(t, "https://instagram.com/p/T1", nil)
	m := newWatchModel("en", time.Second)

	_, cmd := m.Update(watchTickMsg(time.Now()))
	require.NotNil(t, cmd)
	msg, ok := cmd().(clipboardMsg)
	require.True(t, ok)
	assert.Equal(t, "https://instagram.com/p/T1", msg.text)
}

func TestCompleteConfigKeys(t *testing.T) {
	keys, _ := completeConfigKeys(configSetCmd, nil, "server.")
	assert.Equal(t, []string{"server.port", "server.api_key"}, keys)

	keys, _ = completeConfigKeys(configSetCmd, []string{"language"}, "")
	assert.Equal(t, []string{"en", "zh"}, keys)

	keys, _ = completeConfigKeys(configSetCmd, []string{"server.port"}, "")
	assert.Empty(t, keys)

	keys, _ = completeConfigKeys(configGetCmd, []string{"language"}, "")
	assert.Empty(t, keys)
}

func TestCompletionScript(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "vlink")
}
