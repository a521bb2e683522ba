// Package textutil turns media metadata and downloader output into
// display text.
package textutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guiyumin/vlink/internal/core/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	megaBytes = 1024 * 1024
	gigaBytes = 1024 * 1024 * 1024
)

func printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// FileSizeText renders a byte count as GB above one gibibyte and MB
// otherwise. A nil size renders as the localized "unknown".
func FileSizeText(lang string, size *float64) string {
	t := i18n.T(lang)
	if size == nil {
		return t.Format.Unknown
	}

	p := printer(lang)
	if *size > gigaBytes {
		return p.Sprintf(t.Format.FilesizeGB, decimal(*size/gigaBytes, 2))
	}
	return p.Sprintf(t.Format.FilesizeMB, decimal(*size/megaBytes, 2))
}

// decimal keeps the locale's decimal mark but never groups digits
func decimal(v float64, places int) number.Formatter {
	return number.Decimal(halfUp(v, places), number.Scale(places), number.NoSeparator())
}

// halfUp nudges v so that a tie at the given number of decimal places
// rounds away from zero instead of to even. The nudge is applied to the
// shortest decimal form of v, so 1.25 and 1.15 both round up.
func halfUp(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= places {
		return v
	}
	nudged, err := strconv.ParseFloat(s+"1", 64)
	if err != nil {
		return v
	}
	return nudged
}

// DurationText converts seconds to h:mm:ss when longer than an hour,
// and to mm:ss otherwise. Exactly one hour renders as 60:00.
func DurationText(seconds int) string {
	if seconds > 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// BitrateText renders a bitrate given in Kbps. Unknown or non-positive
// bitrates render as an empty string.
func BitrateText(kbps *float64) string {
	if kbps == nil {
		return ""
	}
	br := *kbps
	switch {
	case br <= 0:
		return ""
	case br < 1024:
		return fmt.Sprintf("%.1f Kbps", halfUp(br, 1))
	default:
		return fmt.Sprintf("%.2f Mbps", halfUp(br/1024, 2))
	}
}
