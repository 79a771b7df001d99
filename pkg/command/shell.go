// Package command formats shell-ready playback and download commands (mpv,
// ffmpeg, curl) for captured media items. Builders are pure string
// transforms: no network access, no validation beyond the presence of a
// stream URL.
package command

import (
	"sort"
	"strings"
)

// Quote wraps s in single quotes for a POSIX shell. Embedded single quotes
// use the close-escape-reopen idiom: ' -> '\''.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// continuation joins command parts into a multi-line, backslash-continued
// string that pastes cleanly into a shell.
func continuation(parts []string) string {
	return strings.Join(parts, " \\\n  ")
}

// sortedKeys returns header names in deterministic order. Header maps are
// unordered; sorting keeps builder output reproducible.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
