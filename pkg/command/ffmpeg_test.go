package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediasniff/mediasniff/pkg/media"
)

func TestFfmpegMkvWithSubtitle(t *testing.T) {
	t.Parallel()

	stream := media.Item{URL: "https://x/s.m3u8", Headers: map[string]string{}}
	subs := []media.Item{{URL: "https://x/sub.vtt", LanguageCode: "en"}}

	cmd := Ffmpeg(stream, subs, "mkv", "My Title")

	require.True(t, strings.HasPrefix(cmd, "ffmpeg"))
	require.Contains(t, cmd, "-i 'https://x/s.m3u8'")
	require.Contains(t, cmd, "-i 'https://x/sub.vtt'")
	require.Contains(t, cmd, "-map 0:v")
	require.Contains(t, cmd, "-map 0:a")
	require.Contains(t, cmd, "-map 1")
	require.Contains(t, cmd, "-c copy")
	require.Contains(t, cmd, "-c:s ass")
	require.Contains(t, cmd, "-metadata:s:s:0 language=eng")
	require.Contains(t, cmd, "-metadata:s:s:0 title='English'")
	require.True(t, strings.HasSuffix(cmd, "'My Title.mkv'"))
}

func TestFfmpegMp4Mapping(t *testing.T) {
	t.Parallel()

	stream := media.Item{URL: "https://x/s.m3u8"}
	subs := []media.Item{{URL: "https://x/sub.vtt", LanguageCode: "pt-br"}}

	cmd := Ffmpeg(stream, subs, "mp4", "Video")

	require.Contains(t, cmd, "-map 0")
	require.NotContains(t, cmd, "-map 0:v")
	require.Contains(t, cmd, "-c:s mov_text")
	require.Contains(t, cmd, "-metadata:s:s:0 language=por")
	require.Contains(t, cmd, "-metadata:s:s:0 title='Portuguese (Brazil)'")
	require.True(t, strings.HasSuffix(cmd, "'Video.mp4'"))
}

func TestFfmpegHeaders(t *testing.T) {
	t.Parallel()

	stream := media.Item{
		URL: "https://x/s.m3u8",
		Headers: map[string]string{
			"Referer":    "https://x/",
			"User-Agent": "UA/1.0",
		},
	}

	cmd := Ffmpeg(stream, nil, "mp4", "t")
	require.Contains(t, cmd, "-headers 'Referer: https://x/\r\nUser-Agent: UA/1.0\r\n'")
}

func TestFfmpegNoSubtitles(t *testing.T) {
	t.Parallel()

	cmd := Ffmpeg(media.Item{URL: "https://x/s.m3u8"}, nil, "mkv", "t")
	require.NotContains(t, cmd, "-c:s")
	require.NotContains(t, cmd, "-metadata")
}

func TestFfmpegUnknownLanguageFallsBack(t *testing.T) {
	t.Parallel()

	subs := []media.Item{{URL: "https://x/sub.vtt", LanguageCode: "xx"}}
	cmd := Ffmpeg(media.Item{URL: "https://x/s.m3u8"}, subs, "mkv", "t")

	// unmapped codes pass through, title falls back to the uppercased code
	require.Contains(t, cmd, "-metadata:s:s:0 language=xx")
	require.Contains(t, cmd, "-metadata:s:s:0 title='XX'")
}

func TestFfmpegEmptyStreamURL(t *testing.T) {
	t.Parallel()

	require.Empty(t, Ffmpeg(media.Item{}, nil, "mkv", "t"))
}

func TestFfmpegSanitizesOutputName(t *testing.T) {
	t.Parallel()

	cmd := Ffmpeg(media.Item{URL: "https://x/s.m3u8"}, nil, "mp4", `What? A "Title": yes/no`)
	require.True(t, strings.HasSuffix(cmd, "'What A Title yesno.mp4'"))
}

func TestCurl(t *testing.T) {
	t.Parallel()

	item := media.Item{
		URL:     "https://x/sub.vtt",
		Name:    "sub.vtt",
		Headers: map[string]string{"Referer": "https://x/"},
	}

	cmd := Curl(item, "")
	require.True(t, strings.HasPrefix(cmd, "curl"))
	require.Contains(t, cmd, "-L")
	require.Contains(t, cmd, "-H 'Referer: https://x/'")
	require.Contains(t, cmd, "-o 'sub.vtt'")
	require.True(t, strings.HasSuffix(cmd, "'https://x/sub.vtt'"))
}

func TestCurlEmptyURL(t *testing.T) {
	t.Parallel()

	require.Empty(t, Curl(media.Item{}, "out.vtt"))
}
