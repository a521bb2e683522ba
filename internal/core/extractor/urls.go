package extractor

import (
	"regexp"
	"strings"

	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/notify"
)

var urlPattern = regexp.MustCompile(`(http|https)://[\w\-_]+(\.[\w\-_]+)+([\w\-.,@?^=%&:/~+#]*[\w\-@?^=%&/~+#])?`)

// FindURLs returns the URLs found in input, in order of appearance.
// With firstOnly set, at most one URL is returned.
func FindURLs(input string, firstOnly bool) []string {
	n := -1
	if firstOnly {
		n = 1
	}
	matches := urlPattern.FindAllString(input, n)
	if matches == nil {
		return []string{}
	}
	return matches
}

// MatchURLFromString returns the first URL in s, or every URL joined by
// newlines when multi is set. Empty when s contains no URL.
func MatchURLFromString(s string, multi bool) string {
	return strings.Join(FindURLs(s, !multi), "\n")
}

// Dispatcher extracts URLs from user-supplied text and tells the user
// whether anything usable was found.
type Dispatcher struct {
	toaster *notify.Localized
}

// NewDispatcher creates a Dispatcher that toasts in lang
func NewDispatcher(toaster notify.Toaster, lang string) *Dispatcher {
	return &Dispatcher{toaster: notify.NewLocalized(toaster, lang)}
}

// FromClipboard extracts from pasted text. Every paste is acknowledged,
// with a failure toast when no URL was found.
func (d *Dispatcher) FromClipboard(text string, multi bool) string {
	result := MatchURLFromString(text, multi)
	if result == "" {
		d.toaster.ToastKey(i18n.KeyPasteFailMsg)
	} else {
		d.toaster.ToastKey(i18n.KeyPasteMsg)
	}
	return result
}

// FromSharedText extracts the first URL from text shared by another
// program. Only failures are toasted.
func (d *Dispatcher) FromSharedText(text string) string {
	result := MatchURLFromString(text, false)
	if result == "" {
		d.toaster.ToastKey(i18n.KeyShareFailMsg)
	}
	return result
}
