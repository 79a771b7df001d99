package command

import (
	"fmt"
	"strings"

	"github.com/mediasniff/mediasniff/internal/fileutil"
	"github.com/mediasniff/mediasniff/pkg/media"
)

// Ffmpeg builds a stream-copy ffmpeg invocation that muxes the stream and
// any subtitle inputs into outputFormat ("mp4" or "mkv"). Returns "" when
// the stream has no URL.
//
// MKV output maps 0:v and 0:a explicitly because matroska rejects some
// data streams a bare "-map 0" would try to copy; mp4 takes everything.
func Ffmpeg(stream media.Item, subtitles []media.Item, outputFormat, title string) string {
	if stream.URL == "" {
		return ""
	}

	parts := []string{"ffmpeg"}

	if len(stream.Headers) > 0 {
		var block strings.Builder
		for _, k := range sortedKeys(stream.Headers) {
			block.WriteString(k)
			block.WriteString(": ")
			block.WriteString(stream.Headers[k])
			block.WriteString("\r\n")
		}
		parts = append(parts, "-headers "+Quote(block.String()))
	}

	parts = append(parts, "-i "+Quote(stream.URL))

	var subs []media.Item
	for _, sub := range subtitles {
		if sub.URL == "" {
			continue
		}
		subs = append(subs, sub)
		parts = append(parts, "-i "+Quote(sub.URL))
	}

	if outputFormat == "mkv" {
		parts = append(parts, "-map 0:v", "-map 0:a")
	} else {
		parts = append(parts, "-map 0")
	}
	for i := range subs {
		parts = append(parts, fmt.Sprintf("-map %d", i+1))
	}

	parts = append(parts, "-c copy")

	if len(subs) > 0 {
		if outputFormat == "mkv" {
			parts = append(parts, "-c:s ass")
		} else {
			parts = append(parts, "-c:s mov_text")
		}
	}

	for i, sub := range subs {
		code := sub.LanguageCode
		if code == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("-metadata:s:s:%d language=%s", i, ISO6392(code)))

		name := sub.LanguageName
		if name == "" {
			name = LanguageName(code)
		}
		if name == "" {
			name = strings.ToUpper(code)
		}
		parts = append(parts, fmt.Sprintf("-metadata:s:s:%d title=%s", i, Quote(name)))
	}

	parts = append(parts, Quote(fileutil.OutputName(title, outputFormat)))

	return continuation(parts)
}
