package runnables

import (
	"sort"
	"sync"
)

// Inventory holds the currently known runnables and remembers the last one
// scheduled so it can be rerun.
type Inventory struct {
	mu            sync.RWMutex
	runnables     map[string]Runnable
	lastScheduled string
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{runnables: make(map[string]Runnable)}
}

// Add registers a runnable, replacing any previous one with the same id.
func (inv *Inventory) Add(r Runnable) {
	inv.mu.Lock()
	inv.runnables[r.ID()] = r
	inv.mu.Unlock()
}

// Replace swaps the whole runnable set, keeping the last-scheduled marker
// when that runnable still exists.
func (inv *Inventory) Replace(runnables []Runnable) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.runnables = make(map[string]Runnable, len(runnables))
	for _, r := range runnables {
		inv.runnables[r.ID()] = r
	}
	if _, ok := inv.runnables[inv.lastScheduled]; !ok {
		inv.lastScheduled = ""
	}
}

// List returns all runnables sorted by name, ties broken by id.
func (inv *Inventory) List() []Runnable {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	result := make([]Runnable, 0, len(inv.runnables))
	for _, r := range inv.runnables {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name() != result[j].Name() {
			return result[i].Name() < result[j].Name()
		}
		return result[i].ID() < result[j].ID()
	})
	return result
}

// Get returns a runnable by id.
func (inv *Inventory) Get(id string) (Runnable, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	r, ok := inv.runnables[id]
	return r, ok
}

// Len returns the number of known runnables.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.runnables)
}

// LastScheduled returns the most recently scheduled runnable, if it is
// still in the inventory.
func (inv *Inventory) LastScheduled() (Runnable, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	r, ok := inv.runnables[inv.lastScheduled]
	return r, ok
}

// markScheduled records the runnable id for rerun. Called by the scheduler
// only after a successful spawn request.
func (inv *Inventory) markScheduled(id string) {
	inv.mu.Lock()
	inv.lastScheduled = id
	inv.mu.Unlock()
}
