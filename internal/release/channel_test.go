package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndCurrent(t *testing.T) {
	defer Set("dev")

	Set("stable")
	assert.Equal(t, Stable, Current())
	Set("preview")
	assert.Equal(t, Preview, Current())
	Set("dev")
	assert.Equal(t, Dev, Current())

	// Unknown names fall back to Dev.
	Set("nightly")
	assert.Equal(t, Dev, Current())
}

func TestParseAppLink(t *testing.T) {
	tests := []struct {
		in   string
		path string
		ok   bool
	}{
		{"palettekit://releases/latest", "releases/latest", true},
		{"https://palettekit.dev/docs", "docs", true},
		{"http://localhost:3000/channel/stable", "channel/stable", true},
		{"  palettekit://padded  ", "padded", true},
		{"https://example.com/docs", "", false},
		{"editor backspace", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		path, ok := ParseAppLink(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.path, path, "input %q", tt.in)
	}
}
