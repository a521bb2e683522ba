package textutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/guiyumin/vlink/internal/core/version"
)

var plainHTTPPattern = regexp.MustCompile(`^(http:).*$`)

// loginRequiredPhrases are lowercase fragments of downloader errors that
// mean the site wants cookies or credentials
var loginRequiredPhrases = []string{
	"login required",
	"login page",
	"provide account credentials",
	"sign in",
	"use --cookies",
	"authentication required",
}

// IsNumberInRange reports whether s is a short run of ASCII digits whose
// value lies in [start, end].
func IsNumberInRange(s string, start, end int) bool {
	if s == "" || len(s) >= 10 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= start && n <= end
}

// RoundRange rounds both bounds of a float range half-up
func RoundRange(start, end float64) (int, int) {
	return roundHalfUp(start), roundHalfUp(end)
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

// ToHTTPSURL upgrades an http: URL to https. Anything else, including
// multi-line text, is returned unchanged.
func ToHTTPSURL(s string) string {
	if plainHTTPPattern.MatchString(s) {
		return strings.Replace(s, "http", "https", 1)
	}
	return s
}

// ConnectWithDelimiter joins the non-blank parts with delimiter
func ConnectWithDelimiter(delimiter string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, delimiter)
}

// ConnectWithBlank joins a and b with a single space, or returns
// whichever is non-empty.
func ConnectWithBlank(a, b string) string {
	if a == "" || b == "" {
		return a + b
	}
	return a + " " + b
}

// IsLoginRequired reports whether a downloader error message says the
// site needs the user to log in.
func IsLoginRequired(msg string) bool {
	if msg == "" {
		return false
	}
	lower := strings.ToLower(msg)
	for _, phrase := range loginRequiredPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ErrorReport builds the text a user pastes into a bug report
func ErrorReport(err error, url string) string {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return version.Report() + "\nURL: " + url + "\n" + msg
}
