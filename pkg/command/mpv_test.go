package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediasniff/mediasniff/pkg/media"
)

func TestMpv(t *testing.T) {
	t.Parallel()

	stream := media.Item{
		URL: "https://x/s.m3u8",
		Headers: map[string]string{
			"User-Agent": "UA/1.0",
			"Referer":    "https://x/",
		},
	}
	subs := []media.Item{{URL: "https://x/sub.vtt"}}

	cmd := Mpv(stream, subs)

	require.True(t, strings.HasPrefix(cmd, "mpv"))
	require.Contains(t, cmd, "--user-agent='UA/1.0'")
	require.Contains(t, cmd, "--http-header-fields='Referer: https://x/'")
	require.Contains(t, cmd, "--sub-file='https://x/sub.vtt'")
	require.Contains(t, cmd, "--force-window=immediate")
	require.Contains(t, cmd, "--sub-auto=fuzzy")
	require.Contains(t, cmd, "--demuxer-lavf-o=allowed_extensions=ALL")
	require.True(t, strings.HasSuffix(cmd, "'https://x/s.m3u8'"))
}

func TestMpvUserAgentCaseInsensitive(t *testing.T) {
	t.Parallel()

	stream := media.Item{
		URL:     "https://x/s.m3u8",
		Headers: map[string]string{"user-agent": "UA/2.0"},
	}

	cmd := Mpv(stream, nil)
	require.Contains(t, cmd, "--user-agent='UA/2.0'")
	require.NotContains(t, cmd, "--http-header-fields")
}

func TestMpvEmptyStreamURL(t *testing.T) {
	t.Parallel()

	require.Empty(t, Mpv(media.Item{}, nil))
	require.Empty(t, Mpv(media.Item{URL: ""}, []media.Item{{URL: "https://x/sub.vtt"}}))
}

func TestMpvSkipsSubtitlesWithoutURL(t *testing.T) {
	t.Parallel()

	cmd := Mpv(media.Item{URL: "https://x/s.m3u8"}, []media.Item{{URL: ""}, {URL: "https://x/b.srt"}})
	require.Equal(t, 1, strings.Count(cmd, "--sub-file="))
}

func TestQuoteEscapesSingleQuotes(t *testing.T) {
	t.Parallel()

	quoted := Quote(`it's a 'test'`)
	require.Equal(t, `'it'\''s a '\''test'\'''`, quoted)
}

func TestMpvHeaderValueWithSingleQuote(t *testing.T) {
	t.Parallel()

	stream := media.Item{
		URL:     "https://x/s.m3u8",
		Headers: map[string]string{"Cookie": "session='abc'"},
	}

	cmd := Mpv(stream, nil)
	require.Contains(t, cmd, `--http-header-fields='Cookie: session='\''abc'\'''`)
}
