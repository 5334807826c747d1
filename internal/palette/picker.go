package palette

import (
	"context"
	"sync"

	"github.com/palettekit/palettekit/internal/action"
	"github.com/palettekit/palettekit/internal/fuzzy"
	"github.com/palettekit/palettekit/internal/telemetry"
)

// FocusHandle restores focus to the element that was focused before the
// palette opened. Focus returns before the confirmed action is dispatched so
// the action executes in the caller's original context.
type FocusHandle interface {
	Focus()
}

// Config wires a Picker's collaborators. Zero-value fields get safe
// defaults; only Source is required.
type Config struct {
	// Source supplies the action catalog.
	Source action.Source

	// Filter denylists namespaces/kinds. Nil hides nothing.
	Filter *action.Filter

	// Hits is the shared usage store. Nil creates a private empty store.
	Hits *HitCounts

	// Matcher is the fuzzy primitive. Nil uses DefaultOptions.
	Matcher *fuzzy.Matcher

	// Telemetry receives confirm events. Nil discards them.
	Telemetry telemetry.Reporter

	// Dispatcher executes confirmed actions. Nil drops them.
	Dispatcher action.Dispatcher

	// OnUpdate is called after a ranking pass updates the match list.
	OnUpdate func()

	// OnDismiss is called when the palette deactivates.
	OnDismiss func()
}

// Picker owns one palette activation lifecycle: it snapshots the catalog on
// Open, runs ranking passes in the background as the query changes, tracks
// the selection, and drives the confirm/dismiss protocol.
//
// Ranking results apply via a generation token: every UpdateMatches bumps
// the generation, and a completed pass is dropped unless its generation is
// still current and the picker is still active. Superseded passes are also
// cancelled via context, but the token check is what guarantees
// last-write-wins on the visible state.
type Picker struct {
	matcher    *fuzzy.Matcher
	source     action.Source
	filter     *action.Filter
	hits       *HitCounts
	telemetry  telemetry.Reporter
	dispatcher action.Dispatcher
	onUpdate   func()
	onDismiss  func()

	mu          sync.Mutex
	active      bool
	allCommands []Command
	commands    []Command
	matches     []fuzzy.Match
	selected    int
	generation  uint64
	cancel      context.CancelFunc
	prevFocus   FocusHandle
}

// NewPicker creates a picker from the config. The picker is inactive until
// Open is called.
func NewPicker(cfg Config) *Picker {
	p := &Picker{
		matcher:    cfg.Matcher,
		source:     cfg.Source,
		filter:     cfg.Filter,
		hits:       cfg.Hits,
		telemetry:  cfg.Telemetry,
		dispatcher: cfg.Dispatcher,
		onUpdate:   cfg.OnUpdate,
		onDismiss:  cfg.OnDismiss,
	}
	if p.matcher == nil {
		p.matcher = fuzzy.NewMatcher(fuzzy.DefaultOptions())
	}
	if p.hits == nil {
		p.hits = NewHitCounts()
	}
	if p.telemetry == nil {
		p.telemetry = telemetry.Nop{}
	}
	if p.dispatcher == nil {
		p.dispatcher = action.DispatchFunc(func(action.Action) {})
	}
	return p
}

// Open activates the picker, snapshotting the catalog through the filter.
// prevFocus may be nil. Callers normally follow with UpdateMatches("") to
// populate the browse-all list.
func (p *Picker) Open(prevFocus FocusHandle) {
	commands := BuildCommands(p.source, p.filter)

	p.mu.Lock()
	p.active = true
	p.allCommands = commands
	p.commands = nil
	p.matches = nil
	p.selected = 0
	p.prevFocus = prevFocus
	p.mu.Unlock()
}

// Active reports whether the picker is the current palette activation.
func (p *Picker) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// UpdateMatches starts a background ranking pass for the query, superseding
// any in-flight pass. The returned channel closes when the pass finishes,
// whether its result was applied or dropped as stale.
func (p *Picker) UpdateMatches(query string) <-chan struct{} {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	all := make([]Command, len(p.allCommands))
	copy(all, p.allCommands)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		commands, matches := Rank(ctx, p.matcher, query, all, p.hits)
		if ctx.Err() != nil {
			return
		}
		p.apply(gen, commands, matches)
	}()
	return done
}

// apply installs a completed ranking pass if it is still current.
func (p *Picker) apply(gen uint64, commands []Command, matches []fuzzy.Match) {
	p.mu.Lock()
	if !p.active || gen != p.generation {
		p.mu.Unlock()
		return
	}
	p.commands = commands
	p.matches = matches
	if len(matches) == 0 {
		p.selected = 0
	} else if p.selected > len(matches)-1 {
		p.selected = len(matches) - 1
	}
	notify := p.onUpdate
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Matches returns a copy of the current match list.
func (p *Picker) Matches() []fuzzy.Match {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]fuzzy.Match, len(p.matches))
	copy(out, p.matches)
	return out
}

// MatchCount returns the current match list length.
func (p *Picker) MatchCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.matches)
}

// SelectedIndex returns the current selection.
func (p *Picker) SelectedIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// SetSelectedIndex moves the selection, clamped to the match list.
func (p *Picker) SetSelectedIndex(ix int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ix < 0 {
		ix = 0
	}
	if len(p.matches) == 0 {
		p.selected = 0
		return
	}
	if ix > len(p.matches)-1 {
		ix = len(p.matches) - 1
	}
	p.selected = ix
}

// Confirm invokes the selected command. With an empty match list it is
// equivalent to Dismiss. Otherwise it resolves the selection, removes the
// command from the live set, reports telemetry, records the hit, clears the
// one-shot command/match lists, restores focus, dismisses, and finally hands
// the action to the dispatcher.
func (p *Picker) Confirm() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	if len(p.matches) == 0 {
		p.mu.Unlock()
		p.Dismiss()
		return
	}

	ix := p.matches[p.selected].CandidateID
	command := p.commands[ix]

	// Swap-remove so a stale index cannot re-invoke it.
	p.commands[ix] = p.commands[len(p.commands)-1]
	p.commands = p.commands[:len(p.commands)-1]
	p.matches = nil
	p.commands = nil
	prevFocus := p.prevFocus
	p.mu.Unlock()

	p.telemetry.ReportActionEvent("command palette", command.Name)
	p.hits.Increment(command.Name)

	if prevFocus != nil {
		prevFocus.Focus()
	}
	p.Dismiss()
	p.dispatcher.Dispatch(command.Action)
}

// Dismiss deactivates the picker and drops all per-activation state. Any
// in-flight ranking pass becomes a no-op on completion.
func (p *Picker) Dismiss() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.allCommands = nil
	p.commands = nil
	p.matches = nil
	p.selected = 0
	p.prevFocus = nil
	notify := p.onDismiss
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
}
