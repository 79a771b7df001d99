package capture

import (
	"fmt"
	"sync"
)

// TabState tracks whether the in-page helper for a tab is able to relay
// captures. Explicit states replace retry-until-it-works polling: a tab
// moves unknown -> injecting -> ready|failed, and navigation resets it.
type TabState int

const (
	StateUnknown TabState = iota
	StateInjecting
	StateReady
	StateFailed
)

func (s TabState) String() string {
	switch s {
	case StateInjecting:
		return "injecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type Readiness struct {
	mu     sync.Mutex
	states map[int]TabState
}

func NewReadiness() *Readiness {
	return &Readiness{states: make(map[int]TabState)}
}

// Begin transitions a tab from unknown to injecting. Returns an error when
// the tab is already past that state, so only one injection runs per tab.
func (r *Readiness) Begin(tabID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state := r.states[tabID]; state != StateUnknown {
		return fmt.Errorf("tab %d already %s", tabID, state)
	}
	r.states[tabID] = StateInjecting
	return nil
}

func (r *Readiness) MarkReady(tabID int) {
	r.set(tabID, StateReady)
}

func (r *Readiness) MarkFailed(tabID int) {
	r.set(tabID, StateFailed)
}

func (r *Readiness) State(tabID int) TabState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[tabID]
}

// Invalidate resets a tab to unknown on navigation or close.
func (r *Readiness) Invalidate(tabID int) {
	r.mu.Lock()
	delete(r.states, tabID)
	r.mu.Unlock()
}

func (r *Readiness) set(tabID int, state TabState) {
	r.mu.Lock()
	r.states[tabID] = state
	r.mu.Unlock()
}
