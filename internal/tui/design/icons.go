package design

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconCloud     = "☁" // U+2601 without VS16
	IconFileText  = "📄" // U+1F4C4
	IconScroll    = "📜" // U+1F4DC
	IconInfo      = "ℹ" // U+2139 without VS16
	IconCircle    = "○" // U+25CB
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Single-cell icons get one trailing space, double-cell icons two, so the
// next character is never swallowed.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}
