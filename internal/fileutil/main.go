package fileutil

import (
	"regexp"
	"strings"
)

const maxTitleLength = 100

var (
	forbiddenChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// SanitizeTitle makes a media title safe to use as a filename: forbidden
// characters stripped, whitespace collapsed, trailing period removed,
// truncated to 100 characters. A title that sanitizes to nothing becomes
// "output".
func SanitizeTitle(title string) string {
	s := forbiddenChars.ReplaceAllString(title, "")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")

	// truncate on runes, then re-trim: the cut can land after a space or
	// an inner period
	if runes := []rune(s); len(runes) > maxTitleLength {
		s = strings.TrimSpace(string(runes[:maxTitleLength]))
		s = strings.TrimSuffix(s, ".")
	}

	if s == "" {
		return "output"
	}
	return s
}

// OutputName appends an extension to a sanitized title.
func OutputName(title, ext string) string {
	return SanitizeTitle(title) + "." + ext
}
