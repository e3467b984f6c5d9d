package utils

import (
	"regexp"
	"strings"
)

// AddressFallbackLimit caps the normalized fallback line shown where a place
// has no stored address.
const AddressFallbackLimit = 80

var markupTagPattern = regexp.MustCompile(`<[^>]*>`)

// NormalizeDisplayText strips embedded markup tags from a free-text field,
// replaces the "&nbsp;" escape with a plain space, then truncates to
// AddressFallbackLimit runes, appending "..." when anything was cut off.
func NormalizeDisplayText(s string) string {
	s = markupTagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if len(runes) <= AddressFallbackLimit {
		return s
	}
	return string(runes[:AddressFallbackLimit]) + "..."
}
