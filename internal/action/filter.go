package action

import "sync"

// Filter hides actions from the palette by namespace or kind.
// A zero-value Filter hides nothing.
type Filter struct {
	mu               sync.RWMutex
	hiddenNamespaces map[string]struct{}
	hiddenKinds      map[Kind]struct{}
}

// NewFilter creates an empty filter.
func NewFilter() *Filter {
	return &Filter{
		hiddenNamespaces: make(map[string]struct{}),
		hiddenKinds:      make(map[Kind]struct{}),
	}
}

// HideNamespace hides all actions whose name starts with the namespace.
func (f *Filter) HideNamespace(ns string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hiddenNamespaces == nil {
		f.hiddenNamespaces = make(map[string]struct{})
	}
	f.hiddenNamespaces[ns] = struct{}{}
}

// ShowNamespace removes a namespace from the denylist.
func (f *Filter) ShowNamespace(ns string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hiddenNamespaces, ns)
}

// HideKind hides all actions of the given kind.
func (f *Filter) HideKind(k Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hiddenKinds == nil {
		f.hiddenKinds = make(map[Kind]struct{})
	}
	f.hiddenKinds[k] = struct{}{}
}

// ShowKind removes a kind from the denylist.
func (f *Filter) ShowKind(k Kind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hiddenKinds, k)
}

// Hidden reports whether the action is denylisted.
func (f *Filter) Hidden(a Action) bool {
	if f == nil {
		return false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, ok := f.hiddenNamespaces[Namespace(a.Name())]; ok {
		return true
	}
	_, ok := f.hiddenKinds[a.Kind()]
	return ok
}
