package todos

import "strings"

// CleanOneLine collapses s to a single line of single-spaced words and
// truncates it to maxLen runes (0 means no limit). It reports whether the
// text was truncated.
func CleanOneLine(s string, maxLen int) (string, bool) {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.Join(strings.Fields(s), " ")
	if maxLen > 0 {
		runes := []rune(s)
		if len(runes) > maxLen {
			return string(runes[:maxLen]) + "…", true
		}
	}
	return s, false
}
