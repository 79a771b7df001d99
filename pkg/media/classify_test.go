package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		url         string
		contentType string
		ext         string
		expected    *Classification
	}{
		{
			name:        "hls by mime",
			url:         "https://cdn/a.m3u8",
			contentType: "application/vnd.apple.mpegurl",
			ext:         "m3u8",
			expected:    &Classification{Kind: KindStream, Format: "m3u8", MediaType: TypeHLS},
		},
		{
			name:        "hls by extension only",
			url:         "https://cdn/a.m3u8",
			contentType: "text/plain",
			ext:         "m3u8",
			expected:    &Classification{Kind: KindStream, Format: "m3u8", MediaType: TypeHLS},
		},
		{
			name:        "hls mime with charset parameter",
			url:         "https://cdn/live",
			contentType: "application/x-mpegURL; charset=utf-8",
			ext:         "",
			expected:    &Classification{Kind: KindStream, Format: "m3u8", MediaType: TypeHLS},
		},
		{
			name:        "dash by mime",
			url:         "https://cdn/manifest",
			contentType: "application/dash+xml",
			ext:         "",
			expected:    &Classification{Kind: KindStream, Format: "mpd", MediaType: TypeDASH},
		},
		{
			name:        "dash by extension",
			url:         "https://cdn/m.mpd",
			contentType: "application/octet-stream",
			ext:         "mpd",
			expected:    &Classification{Kind: KindStream, Format: "mpd", MediaType: TypeDASH},
		},
		{
			name:        "video by mime without extension",
			url:         "https://cdn/watch",
			contentType: "video/mp4",
			ext:         "",
			expected:    &Classification{Kind: KindStream, Format: "mp4", MediaType: TypeVideo},
		},
		{
			name:        "video by extension",
			url:         "https://cdn/clip.mkv",
			contentType: "application/octet-stream",
			ext:         "mkv",
			expected:    &Classification{Kind: KindStream, Format: "mkv", MediaType: TypeVideo},
		},
		{
			name:        "subtitle by mime",
			url:         "https://cdn/sub",
			contentType: "text/vtt",
			ext:         "",
			expected:    &Classification{Kind: KindSubtitle, Format: "vtt", MediaType: TypeNone},
		},
		{
			name:        "ambiguous mime needs subtitle extension",
			url:         "https://cdn/sub.srt",
			contentType: "text/plain",
			ext:         "srt",
			expected:    &Classification{Kind: KindSubtitle, Format: "srt", MediaType: TypeNone},
		},
		{
			name:        "ambiguous mime without subtitle extension",
			url:         "https://cdn/page.html",
			contentType: "text/plain",
			ext:         "html",
			expected:    nil,
		},
		{
			name:        "subtitle by extension alone",
			url:         "https://cdn/sub.ass",
			contentType: "",
			ext:         "ass",
			expected:    &Classification{Kind: KindSubtitle, Format: "ass", MediaType: TypeNone},
		},
		{
			name:        "untracked response",
			url:         "https://cdn/app.js",
			contentType: "application/javascript",
			ext:         "js",
			expected:    nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, Classify(tc.url, tc.contentType, tc.ext))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	first := Classify("https://cdn/a.m3u8", "application/vnd.apple.mpegurl", "m3u8")
	second := Classify("https://cdn/a.m3u8", "application/vnd.apple.mpegurl", "m3u8")
	require.Equal(t, first, second)
}

func TestEligible(t *testing.T) {
	t.Parallel()

	require.True(t, Eligible("https://cdn/a.m3u8", 1, 200, "GET"))
	require.True(t, Eligible("http://cdn/a.m3u8", 0, 206, "GET"))

	require.False(t, Eligible("ftp://cdn/a.m3u8", 1, 200, "GET"), "non-http scheme")
	require.False(t, Eligible("https://cdn/a.m3u8", -1, 200, "GET"), "invalid tab")
	require.False(t, Eligible("https://cdn/a.m3u8", 1, 404, "GET"), "non-2xx")
	require.False(t, Eligible("https://cdn/a.m3u8", 1, 200, "POST"), "POST never qualifies")
	require.False(t, Eligible("https://cdn/a.m3u8", 1, 200, "post"), "method match is case-insensitive")
}

func TestExtensionFromURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url      string
		expected string
	}{
		{"https://cdn/video/a.m3u8", "m3u8"},
		{"https://cdn/video/A.M3U8?token=abc", "m3u8"},
		{"https://cdn/video/playlist", ""},
		{"https://cdn/v1.2/clip.mp4", "mp4"},
		// a dot in a parent segment keeps only the part before the slash
		{"https://cdn/v1.2/playlist", "2"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, ExtensionFromURL(tc.url), "url=%s", tc.url)
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "episode.mp4", DisplayName("https://cdn/v/x", `attachment; filename="episode.mp4"`))
	require.Equal(t, "a.m3u8", DisplayName("https://cdn/v/a.m3u8?sig=1", ""))
	require.Equal(t, "cdn", DisplayName("https://cdn/", ""))
}
