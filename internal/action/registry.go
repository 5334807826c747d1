package action

import (
	"fmt"
	"sort"
	"sync"
)

// Source supplies the set of currently available actions. The palette reads
// a fresh snapshot from the source each time it is activated.
type Source interface {
	Available() []Action
}

// Registry is a Source backed by explicit registration. Registration by the
// same name replaces the previous action.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds an action to the registry.
func (r *Registry) Register(a Action) error {
	if a == nil {
		return fmt.Errorf("action cannot be nil")
	}
	if a.Name() == "" {
		return fmt.Errorf("action name cannot be empty")
	}

	r.mu.Lock()
	r.actions[a.Name()] = a
	r.mu.Unlock()
	return nil
}

// RegisterAll adds multiple actions to the registry.
func (r *Registry) RegisterAll(actions []Action) error {
	for _, a := range actions {
		if err := r.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes an action by name.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.actions[name]
	delete(r.actions, name)
	return exists
}

// Available returns all registered actions sorted by name.
func (r *Registry) Available() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}

// Dispatcher executes an action against the caller's focus context.
// Dispatch is fire-and-forget from the palette's perspective.
type Dispatcher interface {
	Dispatch(a Action)
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(a Action)

// Dispatch calls the wrapped function.
func (f DispatchFunc) Dispatch(a Action) { f(a) }
