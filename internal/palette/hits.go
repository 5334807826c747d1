package palette

import "sync"

// HitCounts tracks how many times each command has been confirmed through
// the palette, keyed by display name. Only palette confirmations are
// counted, not keystroke invocations: a user who already knows a keybinding
// is unlikely to search the palette for that command.
//
// Counts start empty at process start, live for the process lifetime, and
// only ever increase. Ranking reads them; Confirm is the only writer.
type HitCounts struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewHitCounts creates an empty hit count store.
func NewHitCounts() *HitCounts {
	return &HitCounts{counts: make(map[string]int)}
}

// Increment records one confirmed invocation of the named command.
func (h *HitCounts) Increment(name string) {
	h.mu.Lock()
	h.counts[name]++
	h.mu.Unlock()
}

// Count returns the number of confirmed invocations for the named command.
func (h *HitCounts) Count(name string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[name]
}

// Len returns the number of distinct commands ever confirmed.
func (h *HitCounts) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.counts)
}
