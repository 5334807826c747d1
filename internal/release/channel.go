// Package release exposes the build channel and application link parsing.
//
// The channel is normally baked in at build time via ldflags; tests and the
// demo front end may override it at runtime.
package release

import (
	"strings"
	"sync"
)

// Channel identifies the release/build channel.
type Channel string

const (
	// Dev is a local development build.
	Dev Channel = "dev"
	// Preview is a pre-release build.
	Preview Channel = "preview"
	// Stable is a production build.
	Stable Channel = "stable"
)

// channelName is set via ldflags; anything unrecognized falls back to Dev.
var channelName = "dev"

var (
	mu      sync.RWMutex
	current = parseChannel(channelName)
)

func parseChannel(name string) Channel {
	switch Channel(name) {
	case Preview:
		return Preview
	case Stable:
		return Stable
	default:
		return Dev
	}
}

// Current returns the active release channel.
func Current() Channel {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set overrides the active release channel. Unrecognized names become Dev.
func Set(name string) {
	mu.Lock()
	defer mu.Unlock()
	current = parseChannel(name)
}

// Link prefixes recognized by ParseAppLink.
var linkPrefixes = []string{
	"palettekit://",
	"https://palettekit.dev/",
	"http://localhost:3000/",
}

// ParseAppLink reports whether the string is an application link and returns
// the path portion after the recognized prefix.
func ParseAppLink(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, prefix := range linkPrefixes {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest, true
		}
	}
	return "", false
}
