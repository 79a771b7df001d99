// Package media models captured media resources and classifies observed
// HTTP responses into streams (HLS/DASH manifests, direct video files) and
// subtitle files.
package media

import (
	"fmt"
	"sync"
	"time"

	"github.com/mediasniff/mediasniff/pkg/m3u8"
)

type Kind int

const (
	KindStream Kind = iota
	KindSubtitle
)

func (k Kind) String() string {
	switch k {
	case KindStream:
		return "stream"
	case KindSubtitle:
		return "subtitle"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Type is the stream transport, only meaningful for KindStream.
type Type int

const (
	TypeNone Type = iota
	TypeHLS
	TypeDASH
	TypeVideo
)

func (t Type) String() string {
	switch t {
	case TypeHLS:
		return "hls"
	case TypeDASH:
		return "dash"
	case TypeVideo:
		return "video"
	default:
		return "none"
	}
}

func (t Type) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Item is one captured media resource. URL is its identity: two items with
// the same URL within a collection are the same item.
type Item struct {
	URL       string            `json:"url"`
	Kind      Kind              `json:"kind"`
	Format    string            `json:"format"`
	MediaType Type              `json:"mediaType"`
	Name      string            `json:"name"`
	Size      int64             `json:"size"`
	Headers   map[string]string `json:"headers,omitempty"`
	Timestamp time.Time         `json:"timestamp"`

	// subtitle enrichment
	LanguageCode string `json:"languageCode,omitempty"`
	LanguageName string `json:"languageName,omitempty"`

	// HLS enrichment
	IsMasterPlaylist  bool           `json:"isMasterPlaylist,omitempty"`
	Variants          []m3u8.Variant `json:"variants,omitempty"`
	Duration          float64        `json:"duration,omitempty"`
	DurationFormatted string         `json:"durationFormatted,omitempty"`
}

type collectionKey struct {
	kind Kind
	url  string
}

// Collection holds the items captured for one tab, deduplicated by
// (kind, URL). Adding a duplicate is a no-op.
type Collection struct {
	mu    sync.RWMutex
	items []Item
	seen  map[collectionKey]struct{}
}

func NewCollection() *Collection {
	return &Collection{seen: make(map[collectionKey]struct{})}
}

// Add appends the item unless its URL is already present for that kind.
// Reports whether the item was added.
func (c *Collection) Add(item Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := collectionKey{kind: item.Kind, url: item.URL}
	if _, ok := c.seen[key]; ok {
		return false
	}

	c.seen[key] = struct{}{}
	c.items = append(c.items, item)
	return true
}

func (c *Collection) Contains(kind Kind, url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.seen[collectionKey{kind: kind, url: url}]
	return ok
}

// Items returns a copy in capture order.
func (c *Collection) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsOfKind returns captured items of one kind, in capture order.
func (c *Collection) ItemsOfKind(kind Kind) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Item
	for _, item := range c.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection) Get(kind Kind, url string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.Kind == kind && item.URL == url {
			return item, true
		}
	}
	return Item{}, false
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
