// Package action defines the action model consumed by the command palette.
//
// An Action is an invocable, named unit of editor functionality with a raw
// namespaced name such as "editor::Backspace". The Registry is the catalog
// the palette reads its command set from; the Filter denylists namespaces or
// kinds before commands are built; the Dispatcher is the collaborator that
// ultimately executes a confirmed action.
package action
