package palette

import (
	"sync"

	"github.com/palettekit/palettekit/internal/action"
)

// InterceptResult is a synthetic match produced by an Interceptor. It is
// spliced in ahead of all fuzzy results, and any fuzzy match referring to an
// action of the same kind is dropped so the command is not shown twice.
type InterceptResult struct {
	// Action is the synthesized action to invoke on confirm.
	Action action.Action

	// String is the display string for the synthetic match.
	String string

	// Positions are highlight positions chosen by the interceptor.
	Positions []int
}

// Interceptor inspects the raw query and may produce a special-case match
// that bypasses fuzzy scoring, e.g. recognizing a pasted URL. It runs on
// every keystroke and must be fast and side-effect-free.
type Interceptor func(query string) *InterceptResult

var (
	interceptMu sync.RWMutex
	interceptor Interceptor
)

// RegisterInterceptor installs the process-wide interceptor. At most one is
// active at a time; registering replaces any previous interceptor.
func RegisterInterceptor(fn Interceptor) {
	interceptMu.Lock()
	interceptor = fn
	interceptMu.Unlock()
}

// UnregisterInterceptor removes the active interceptor, if any.
func UnregisterInterceptor() {
	RegisterInterceptor(nil)
}

// intercept runs the active interceptor against the query.
// Returns nil when no interceptor is registered or it declines.
func intercept(query string) *InterceptResult {
	interceptMu.RLock()
	fn := interceptor
	interceptMu.RUnlock()

	if fn == nil {
		return nil
	}
	return fn(query)
}
