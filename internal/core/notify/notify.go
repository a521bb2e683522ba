// Package notify shows short transient messages ("toasts") to the user.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/guiyumin/vlink/internal/core/i18n"
)

var toastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

// Toaster displays a single short message
type Toaster interface {
	Toast(text string)
}

// Terminal writes each toast as one styled line
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal creates a Toaster writing to w (usually os.Stderr)
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Toast(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, toastStyle.Render("› "+text))
}

// Recorder keeps toasts in memory
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Toast(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, text)
}

// Messages returns a copy of the recorded toasts in order
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Localized resolves catalog keys before handing text to the wrapped Toaster
type Localized struct {
	next Toaster
	t    *i18n.Translations
}

// NewLocalized wraps next with the catalog for lang
func NewLocalized(next Toaster, lang string) *Localized {
	return &Localized{next: next, t: i18n.T(lang)}
}

// Toast shows text as-is
func (l *Localized) Toast(text string) {
	l.next.Toast(text)
}

// ToastKey shows the catalog text for key, or the key itself if it is missing
func (l *Localized) ToastKey(key string) {
	text, ok := l.t.Lookup(key)
	if !ok || text == "" {
		text = key
	}
	l.next.Toast(text)
}
