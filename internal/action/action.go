package action

import "strings"

// MalformedNamespace is the namespace label used for action names that do
// not contain the "::" separator.
const MalformedNamespace = "malformed action name"

// Kind identifies the concrete type of an action. Two actions of the same
// concrete type share a Kind even when their payloads differ; the palette
// uses it to deduplicate intercepted commands against fuzzy matches.
type Kind string

// Action is an invocable, named unit of editor functionality.
//
// Actions are immutable once registered. Interface values are shared freely;
// a command list holds its own reference to the same underlying action.
type Action interface {
	// Name returns the raw namespaced action name, e.g. "editor::Backspace".
	Name() string

	// Kind returns the action's type identity.
	Kind() Kind

	// Run executes the action.
	Run() error
}

// Namespace extracts the namespace portion of a raw action name.
// Names without a "::" separator yield MalformedNamespace.
func Namespace(name string) string {
	ns, _, ok := strings.Cut(name, "::")
	if !ok {
		return MalformedNamespace
	}
	return ns
}

// Func is a function-backed action.
type Func struct {
	name string
	kind Kind
	run  func() error
}

// NewFunc creates an action from a raw namespaced name and a handler.
// The Kind defaults to the name itself, which is correct for singleton
// actions; parameterized actions should use NewFuncKind.
func NewFunc(name string, run func() error) *Func {
	return &Func{name: name, kind: Kind(name), run: run}
}

// NewFuncKind creates an action with an explicit kind.
func NewFuncKind(name string, kind Kind, run func() error) *Func {
	return &Func{name: name, kind: kind, run: run}
}

// Name returns the raw namespaced action name.
func (f *Func) Name() string { return f.name }

// Kind returns the action's type identity.
func (f *Func) Kind() Kind { return f.kind }

// Run executes the handler. A nil handler is a no-op.
func (f *Func) Run() error {
	if f.run == nil {
		return nil
	}
	return f.run()
}

// KindOpenURL is the type identity shared by all OpenURL actions.
const KindOpenURL Kind = "workspace::OpenUrl"

// OpenURL opens an application link. It is synthesized by the palette when a
// query is recognized as a URL rather than registered in the catalog.
type OpenURL struct {
	URL string

	// Opener handles the actual navigation. Nil means Run is a no-op,
	// which keeps synthesized instances safe in tests.
	Opener func(url string) error
}

// Name returns the raw namespaced action name.
func (o *OpenURL) Name() string { return string(KindOpenURL) }

// Kind returns the action's type identity.
func (o *OpenURL) Kind() Kind { return KindOpenURL }

// Run opens the URL via the configured opener.
func (o *OpenURL) Run() error {
	if o.Opener == nil {
		return nil
	}
	return o.Opener(o.URL)
}
