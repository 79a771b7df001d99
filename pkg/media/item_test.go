package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionDedup(t *testing.T) {
	t.Parallel()

	c := NewCollection()

	require.True(t, c.Add(Item{URL: "https://cdn/a.m3u8", Kind: KindStream}))
	require.False(t, c.Add(Item{URL: "https://cdn/a.m3u8", Kind: KindStream}))
	require.Equal(t, 1, c.Len())

	// same URL under a different kind is a distinct entry
	require.True(t, c.Add(Item{URL: "https://cdn/a.m3u8", Kind: KindSubtitle}))
	require.Equal(t, 2, c.Len())
}

func TestCollectionItemsOfKind(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add(Item{URL: "https://cdn/a.m3u8", Kind: KindStream})
	c.Add(Item{URL: "https://cdn/sub.vtt", Kind: KindSubtitle})
	c.Add(Item{URL: "https://cdn/b.mp4", Kind: KindStream})

	streams := c.ItemsOfKind(KindStream)
	require.Len(t, streams, 2)
	require.Equal(t, "https://cdn/a.m3u8", streams[0].URL)
	require.Equal(t, "https://cdn/b.mp4", streams[1].URL)

	subs := c.ItemsOfKind(KindSubtitle)
	require.Len(t, subs, 1)
}

func TestCollectionGet(t *testing.T) {
	t.Parallel()

	c := NewCollection()
	c.Add(Item{URL: "https://cdn/a.m3u8", Kind: KindStream, Format: "m3u8"})

	item, ok := c.Get(KindStream, "https://cdn/a.m3u8")
	require.True(t, ok)
	require.Equal(t, "m3u8", item.Format)

	_, ok = c.Get(KindStream, "https://cdn/missing.m3u8")
	require.False(t, ok)
}

func TestKindAndTypeStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "stream", KindStream.String())
	require.Equal(t, "subtitle", KindSubtitle.String())
	require.Equal(t, "hls", TypeHLS.String())
	require.Equal(t, "dash", TypeDASH.String())
	require.Equal(t, "video", TypeVideo.String())
	require.Equal(t, "none", TypeNone.String())
}
