// Package capture wires the classifier, the HLS parser and the estimators
// to the outside world: it ingests observed response metadata, keeps
// per-tab collections of captured media, and enriches HLS captures by
// fetching and parsing their playlists.
package capture

import (
	"sync"

	"github.com/mediasniff/mediasniff/pkg/media"
)

// Store keeps one media collection per tab. Collections live until the tab
// navigates away or closes, then the whole thing is dropped.
type Store struct {
	mu   sync.RWMutex
	tabs map[int]*media.Collection
}

func NewStore() *Store {
	return &Store{tabs: make(map[int]*media.Collection)}
}

// Add inserts the item into the tab's collection, creating the collection
// on first use. Duplicate URLs are a no-op; reports whether the item was
// actually added.
func (s *Store) Add(tabID int, item media.Item) bool {
	s.mu.Lock()
	coll, ok := s.tabs[tabID]
	if !ok {
		coll = media.NewCollection()
		s.tabs[tabID] = coll
	}
	s.mu.Unlock()

	return coll.Add(item)
}

func (s *Store) Contains(tabID int, kind media.Kind, url string) bool {
	if coll := s.collection(tabID); coll != nil {
		return coll.Contains(kind, url)
	}
	return false
}

func (s *Store) Get(tabID int, kind media.Kind, url string) (media.Item, bool) {
	if coll := s.collection(tabID); coll != nil {
		return coll.Get(kind, url)
	}
	return media.Item{}, false
}

// Items returns all captures for a tab in capture order.
func (s *Store) Items(tabID int) []media.Item {
	if coll := s.collection(tabID); coll != nil {
		return coll.Items()
	}
	return nil
}

func (s *Store) ItemsOfKind(tabID int, kind media.Kind) []media.Item {
	if coll := s.collection(tabID); coll != nil {
		return coll.ItemsOfKind(kind)
	}
	return nil
}

// DropTab discards the whole collection for a tab (navigation or close).
func (s *Store) DropTab(tabID int) {
	s.mu.Lock()
	delete(s.tabs, tabID)
	s.mu.Unlock()
}

// Tabs lists tab ids with at least one capture.
func (s *Store) Tabs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, 0, len(s.tabs))
	for id := range s.tabs {
		out = append(out, id)
	}
	return out
}

func (s *Store) collection(tabID int) *media.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tabs[tabID]
}
