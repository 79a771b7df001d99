package command

import (
	"strings"

	"github.com/mediasniff/mediasniff/pkg/media"
)

// Mpv builds a paste-ready mpv invocation for a captured stream plus any
// subtitle sidecars. The original request headers ride along so the replay
// hits the CDN the same way the page did. Returns "" when the stream has
// no URL.
func Mpv(stream media.Item, subtitles []media.Item) string {
	if stream.URL == "" {
		return ""
	}

	parts := []string{"mpv"}

	userAgent := ""
	var headerPairs []string
	for _, k := range sortedKeys(stream.Headers) {
		v := stream.Headers[k]
		if strings.EqualFold(k, "User-Agent") {
			userAgent = v
			continue
		}
		headerPairs = append(headerPairs, Quote(k+": "+v))
	}

	if userAgent != "" {
		parts = append(parts, "--user-agent="+Quote(userAgent))
	}
	if len(headerPairs) > 0 {
		parts = append(parts, "--http-header-fields="+strings.Join(headerPairs, ","))
	}

	for _, sub := range subtitles {
		if sub.URL == "" {
			continue
		}
		parts = append(parts, "--sub-file="+Quote(sub.URL))
	}

	parts = append(parts,
		"--force-window=immediate",
		"--sub-auto=fuzzy",
		"--demuxer-lavf-o=allowed_extensions=ALL",
		Quote(stream.URL),
	)

	return continuation(parts)
}
