package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamespace(t *testing.T) {
	assert.Equal(t, "editor", Namespace("editor::Backspace"))
	assert.Equal(t, "go_to_line", Namespace("go_to_line::Deploy"))
	assert.Equal(t, MalformedNamespace, Namespace("nonamespace"))
	assert.Equal(t, MalformedNamespace, Namespace(""))
}

func TestFuncAction(t *testing.T) {
	ran := false
	a := NewFunc("editor::Save", func() error {
		ran = true
		return nil
	})

	assert.Equal(t, "editor::Save", a.Name())
	assert.Equal(t, Kind("editor::Save"), a.Kind())
	require.NoError(t, a.Run())
	assert.True(t, ran)

	// Nil handler is a no-op, not a failure.
	assert.NoError(t, NewFunc("editor::Noop", nil).Run())
}

func TestFuncActionPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	a := NewFunc("editor::Fail", func() error { return boom })
	assert.ErrorIs(t, a.Run(), boom)
}

func TestOpenURLSharesKind(t *testing.T) {
	a := &OpenURL{URL: "palettekit://one"}
	b := &OpenURL{URL: "palettekit://two"}
	assert.Equal(t, a.Kind(), b.Kind())
	assert.NoError(t, a.Run())

	var opened string
	c := &OpenURL{URL: "palettekit://three", Opener: func(url string) error {
		opened = url
		return nil
	}}
	require.NoError(t, c.Run())
	assert.Equal(t, "palettekit://three", opened)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.Error(t, reg.Register(nil))
	require.Error(t, reg.Register(NewFunc("", nil)))

	require.NoError(t, reg.RegisterAll([]Action{
		NewFunc("workspace::Save", nil),
		NewFunc("editor::Backspace", nil),
	}))
	assert.Equal(t, 2, reg.Count())

	// Available sorts by raw name.
	names := make([]string, 0, 2)
	for _, a := range reg.Available() {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"editor::Backspace", "workspace::Save"}, names)

	// Same-name registration replaces.
	require.NoError(t, reg.Register(NewFunc("editor::Backspace", nil)))
	assert.Equal(t, 2, reg.Count())

	assert.True(t, reg.Unregister("editor::Backspace"))
	assert.False(t, reg.Unregister("editor::Backspace"))
	assert.Equal(t, 1, reg.Count())
}

func TestFilter(t *testing.T) {
	f := NewFilter()
	editor := NewFunc("editor::Backspace", nil)
	save := NewFunc("workspace::Save", nil)

	assert.False(t, f.Hidden(editor))

	f.HideNamespace("editor")
	assert.True(t, f.Hidden(editor))
	assert.False(t, f.Hidden(save))

	f.ShowNamespace("editor")
	assert.False(t, f.Hidden(editor))

	f.HideKind(save.Kind())
	assert.True(t, f.Hidden(save))
	f.ShowKind(save.Kind())
	assert.False(t, f.Hidden(save))
}

func TestNilFilterHidesNothing(t *testing.T) {
	var f *Filter
	assert.False(t, f.Hidden(NewFunc("editor::Backspace", nil)))
}
