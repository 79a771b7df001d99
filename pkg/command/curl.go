package command

import (
	"github.com/mediasniff/mediasniff/pkg/media"
)

// Curl builds a download command for a single captured item, replaying its
// original request headers. Returns "" when the item has no URL.
func Curl(item media.Item, outputName string) string {
	if item.URL == "" {
		return ""
	}

	parts := []string{"curl", "-L"}

	for _, k := range sortedKeys(item.Headers) {
		parts = append(parts, "-H "+Quote(k+": "+item.Headers[k]))
	}

	if outputName == "" {
		outputName = item.Name
	}
	if outputName != "" {
		parts = append(parts, "-o "+Quote(outputName))
	}

	parts = append(parts, Quote(item.URL))

	return continuation(parts)
}
